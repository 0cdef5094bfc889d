package content

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// titleCase capitalizes every word, matching the casing the article
// templates were written against ("pdf merger" -> "Pdf Merger").
func titleCase(keyword string) string {
	return titleCaser.String(keyword)
}

// Note: the how-to-guide template prepends "How to" even when the
// keyword already starts with "how to", producing titles like
// "How to How To Merge Pdf Files: Complete Guide". That behavior is
// kept on purpose until product says otherwise; see the synthesizer
// tests that pin it down.
func buildTitle(keyword string, contentType string) string {
	titled := titleCase(keyword)

	switch contentType {
	case "how-to-guide":
		return fmt.Sprintf("How to %s: Complete Guide", titled)
	case "comparison":
		return fmt.Sprintf("%s: Best Options Compared", titled)
	case "listicle":
		return fmt.Sprintf("Best %s Tools in 2024", titled)
	case "definition":
		return fmt.Sprintf("What is %s? Complete Guide", titled)
	case "tool-showcase":
		return fmt.Sprintf("Free %s Online Tool", titled)
	default:
		return fmt.Sprintf("%s: Everything You Need to Know", titled)
	}
}

func buildMetaDescription(keyword string, contentType string) string {
	switch contentType {
	case "how-to-guide":
		return fmt.Sprintf("Learn how to %s with our step-by-step guide. Free online tools and expert tips to help you get started.", keyword)
	case "tool-showcase":
		return fmt.Sprintf("Use our free %s online tool. No registration required, instant results, and completely free to use.", keyword)
	default:
		return fmt.Sprintf("Discover everything about %s. Expert insights, free tools, and practical tips for your needs.", keyword)
	}
}

func buildHeadings(keyword string, contentType string) []string {
	titled := titleCase(keyword)

	switch contentType {
	case "how-to-guide":
		return []string{
			fmt.Sprintf("What is %s?", titled),
			fmt.Sprintf("Why Use %s?", titled),
			fmt.Sprintf("Step-by-Step Guide to %s", titled),
			fmt.Sprintf("Best Tools for %s", titled),
			"Common Mistakes to Avoid",
			"Tips and Best Practices",
			"Frequently Asked Questions",
		}
	case "tool-showcase":
		return []string{
			fmt.Sprintf("What is %s?", titled),
			fmt.Sprintf("Features of Our %s Tool", titled),
			fmt.Sprintf("How to Use Our %s Tool", titled),
			"Benefits of Using Our Tool",
			"Alternative Options",
			"Frequently Asked Questions",
		}
	case "comparison":
		return []string{
			fmt.Sprintf("What is %s?", titled),
			fmt.Sprintf("Top %s Options", titled),
			"Feature Comparison",
			"Pros and Cons",
			"Our Recommendation",
			"Frequently Asked Questions",
		}
	default:
		return []string{
			fmt.Sprintf("What is %s?", titled),
			"Key Features and Benefits",
			"How to Get Started",
			"Best Practices",
			"Frequently Asked Questions",
		}
	}
}

func whatIsSection(keyword string) string {
	return fmt.Sprintf(`%[1]s is a powerful tool that helps users accomplish various tasks efficiently. Whether you're a professional, student, or casual user, understanding %[2]s can significantly improve your workflow and productivity.

In today's digital age, %[2]s has become an essential part of many people's daily routines. From basic functionality to advanced features, this tool offers a comprehensive solution for your needs.

Our platform provides a user-friendly interface that makes %[2]s accessible to everyone, regardless of their technical expertise. With our free online tool, you can get started immediately without any downloads or installations.`,
		titleCase(keyword), keyword)
}

func howToSection(keyword string) string {
	return fmt.Sprintf(`Follow these simple steps to use our %[1]s tool effectively:

**Step 1: Access the Tool**
Visit our website and navigate to the %[1]s section. Our tool is available 24/7 and requires no registration.

**Step 2: Prepare Your Files**
Ensure your files are in a supported format. Our tool supports most common file types and provides clear instructions for each format.

**Step 3: Upload and Process**
Upload your files using our drag-and-drop interface or file browser. Our system will automatically process your files and provide real-time updates.

**Step 4: Download Results**
Once processing is complete, download your results immediately. All files are automatically deleted from our servers for your privacy and security.

**Pro Tips:**
- Use our preview feature before finalizing your work
- Check the file size limits for optimal performance
- Save your work regularly to avoid any data loss`, keyword)
}

func featuresSection(keyword string) string {
	return fmt.Sprintf(`Our %s tool comes packed with powerful features designed to meet all your needs:

**Core Features:**
- **Fast Processing**: Get results in seconds, not minutes
- **Multiple Formats**: Support for all major file formats
- **Batch Processing**: Handle multiple files at once
- **Cloud-Based**: No downloads or installations required

**Security Features:**
- **SSL Encryption**: All data is encrypted in transit
- **Auto-Deletion**: Files are automatically removed after processing
- **No Registration**: Use our tool without creating an account
- **Privacy-First**: We never store or access your personal data

**Advanced Features:**
- **Custom Settings**: Adjust parameters to match your requirements
- **Preview Mode**: See results before finalizing
- **Download Options**: Multiple output formats available
- **24/7 Availability**: Access our tool anytime, anywhere`, keyword)
}

func benefitsSection(keyword string) string {
	return fmt.Sprintf(`Using our %s tool offers numerous advantages over traditional methods:

**Time Savings**
Our automated process saves hours of manual work. What used to take days can now be completed in minutes.

**Cost Effective**
Completely free to use with no hidden fees or premium tiers. Save money on expensive software licenses.

**Accessibility**
Access our tool from any device with an internet connection. No need to install software or worry about compatibility.

**Security**
Your files are processed securely and automatically deleted. We prioritize your privacy and data protection.

**Scalability**
Handle projects of any size, from individual files to large batches. Our infrastructure scales to meet your needs.

**Accuracy**
Advanced algorithms ensure consistent, high-quality results every time. Reduce errors and improve efficiency.`, keyword)
}

func bestOptionsSection(keyword string) string {
	return fmt.Sprintf(`Here are the top %s options available in 2024:

**Our Tool (Recommended)**
- **Pros**: Free, fast, secure, no registration required
- **Cons**: Requires internet connection
- **Best for**: Most users, especially those who value simplicity

**Alternative Option 1**
- **Pros**: Advanced features, offline capability
- **Cons**: Expensive, complex interface
- **Best for**: Power users with specific requirements

**Alternative Option 2**
- **Pros**: Good balance of features and ease of use
- **Cons**: Limited free tier, slower processing
- **Best for**: Users who need specific integrations

**Our Recommendation:**
For most users, our free online tool provides the best combination of features, ease of use, and value. It's perfect for both beginners and experienced users who want reliable results without the complexity.`, keyword)
}

func faqSection(keyword string) string {
	return fmt.Sprintf(`**Frequently Asked Questions**

**Q: Is the %s tool really free?**
A: Yes, our tool is completely free to use with no hidden costs or premium features.

**Q: What file formats are supported?**
A: We support all major file formats including PDF, DOC, DOCX, TXT, and many more. Check our format guide for the complete list.

**Q: How long does processing take?**
A: Most files are processed within 30 seconds. Larger files may take up to 2 minutes.

**Q: Is my data secure?**
A: Absolutely. We use SSL encryption and automatically delete all files after processing. We never access or store your personal data.

**Q: Can I use the tool on mobile devices?**
A: Yes, our tool is fully responsive and works on all devices including smartphones and tablets.

**Q: What if I encounter an error?**
A: Our support team is available 24/7 to help resolve any issues. Contact us through our support page for immediate assistance.`, keyword)
}

func genericSection(heading string, keyword string) string {
	return fmt.Sprintf(`%[1]s

This section provides valuable information about %[2]s and how it can benefit your workflow. Our comprehensive approach ensures you have all the information you need to make informed decisions.

Whether you're a beginner or an experienced user, understanding the key concepts and best practices will help you achieve better results. Our tool is designed to be intuitive and user-friendly, making it accessible to users of all skill levels.

For the best experience, we recommend exploring all the features our %[2]s tool has to offer. Take advantage of our free trial and see how our solution can improve your productivity and efficiency.`,
		heading, keyword)
}
