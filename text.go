package main

// Link is a labelled navigation or social link.
type Link struct {
	Name string
	Page string
	URL  string
}

var (
	SiteName = "Portfolio"

	FooterTagline = "Crafted with intention."

	ContactEmail    = "connect.davuluri@gmail.com"
	ContactLocation = "Vellore, Tamil Nadu, India"
	ContactPhone    = "(+91) 9873342537"
	ResponseTime    = "Usually within 24-48 hours"

	// CrypticPhrases rotate under the home page hero.
	CrypticPhrases = []string{
		"Physics-informed AI for wireless systems",
		"Simulation frameworks for 5G research",
		"OAM multiplexing in turbulent channels",
		"Deep learning for signal recovery",
		"Reinforcement learning for network optimization",
		"Free space optical communications",
	}

	NavLinks = []Link{
		{Name: "Work", Page: "Work"},
		{Name: "About", Page: "About"},
		{Name: "Contact", Page: "Contact"},
	}

	SocialLinks = []Link{
		{Name: "LinkedIn", URL: "https://www.linkedin.com/"},
		{Name: "GitHub", URL: "https://github.com/"},
		{Name: "Twitter", URL: "https://twitter.com/"},
	}

	ContactSuccess = "Thank you for your message! I'll get back to you soon."
	ContactError   = "Sorry, there was an error sending your message. Please try again later."
	ContactLimited = "You've sent a few messages already. Please wait a minute before trying again."
)
