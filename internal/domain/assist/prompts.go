package assist

import "fmt"

func rewritePrompt(text string) string {
	return fmt.Sprintf(`Rewrite the following line item description for a business quotation to make it sound professional, clear, and value-oriented. Keep it concise (under 20 words). Input: %q`, text)
}

func termsPrompt(businessType string) string {
	return fmt.Sprintf(`Generate a concise set of standard terms and conditions (max 3 bullet points) for a quotation for a %q business. Include payment terms and validity. Format as plain text.`, businessType)
}

func emailPrompt(clientName, formattedTotal, businessName string) string {
	if clientName == "" {
		clientName = "Valued Client"
	}
	return fmt.Sprintf(`Write a short, polite, professional email draft to send a quotation to a client.
Client Name: %s
Total Amount: %s
My Business: %s

Keep it friendly and ask for approval to proceed.`, clientName, formattedTotal, businessName)
}
