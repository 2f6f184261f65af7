package catalog

var services = []Service{
	{
		ID:            "music",
		Title:         "AI Music Production",
		Icon:          "music",
		Description:   "Automated composition, arrangement, and mastering",
		StartingPrice: "Starting at $500",
		Timeline:      "2-5 days",
		Examples:      []string{"Background music", "Jingles", "Full compositions", "Sound design"},
	},
	{
		ID:            "video",
		Title:         "AI Video Creation",
		Icon:          "video",
		Description:   "Intelligent editing, effects, and content generation",
		StartingPrice: "Starting at $1,000",
		Timeline:      "3-7 days",
		Examples:      []string{"Marketing videos", "Social content", "Explainer videos", "Video editing"},
	},
	{
		ID:            "development",
		Title:         "AI Application Development",
		Icon:          "code",
		Description:   "Custom AI-powered software solutions",
		StartingPrice: "Starting at $5,000",
		Timeline:      "2-8 weeks",
		Examples:      []string{"Chatbots", "Data analysis", "Predictive models", "Custom AI tools"},
	},
	{
		ID:            "website",
		Title:         "AI Website Development",
		Icon:          "globe",
		Description:   "Smart websites with AI-powered features",
		StartingPrice: "Starting at $3,000",
		Timeline:      "1-4 weeks",
		Examples:      []string{"AI chatbots", "Personalization", "Content generation", "Smart search"},
	},
	{
		ID:            "automation",
		Title:         "AI Process Automation",
		Icon:          "zap",
		Description:   "Streamline workflows with intelligent automation",
		StartingPrice: "Starting at $2,000",
		Timeline:      "1-3 weeks",
		Examples:      []string{"Document processing", "Email automation", "Data entry", "Workflow optimization"},
	},
}

var budgetRanges = []Option{
	{ID: "small", Label: "$2,000 - $5,000", Description: "Perfect for getting started"},
	{ID: "medium", Label: "$5,000 - $15,000", Description: "Most popular choice"},
	{ID: "large", Label: "$15,000 - $50,000", Description: "Comprehensive solution"},
	{ID: "enterprise", Label: "$50,000+", Description: "Enterprise transformation"},
}

var timelineOptions = []Option{
	{ID: "urgent", Label: "ASAP (Rush delivery)", Description: "We can start immediately"},
	{ID: "fast", Label: "1-2 weeks", Description: "Quick turnaround"},
	{ID: "normal", Label: "1-2 months", Description: "Standard timeline"},
	{ID: "flexible", Label: "3+ months", Description: "Flexible planning"},
}

var timeSlots = []string{
	"Tomorrow 2:00 PM",
	"Tomorrow 4:00 PM",
	"Wed 10:00 AM",
	"Wed 2:00 PM",
	"Thu 9:00 AM",
	"Thu 3:00 PM",
}

var portfolioItems = []PortfolioItem{
	{
		ID:          "1",
		Title:       "E-commerce AI Chatbot",
		Category:    "development",
		Description: "Intelligent customer service bot that increased sales by 40%",
		Tags:        []string{"AI", "Chatbot", "E-commerce"},
	},
	{
		ID:          "2",
		Title:       "Brand Music Suite",
		Category:    "music",
		Description: "Complete audio identity for tech startup including jingles and background music",
		Tags:        []string{"Music", "Branding", "Audio"},
	},
	{
		ID:          "3",
		Title:       "Marketing Video Campaign",
		Category:    "video",
		Description: "AI-generated video series that boosted engagement by 200%",
		Tags:        []string{"Video", "Marketing", "AI Generation"},
	},
	{
		ID:          "4",
		Title:       "Smart Analytics Dashboard",
		Category:    "website",
		Description: "AI-powered website with predictive analytics and personalization",
		Tags:        []string{"Website", "Analytics", "Personalization"},
	},
	{
		ID:          "5",
		Title:       "Document Processing System",
		Category:    "automation",
		Description: "Automated document workflow saving 30 hours per week",
		Tags:        []string{"Automation", "Document Processing", "Workflow"},
	},
	{
		ID:          "6",
		Title:       "Predictive Sales Model",
		Category:    "development",
		Description: "Machine learning model that improved sales forecasting accuracy by 85%",
		Tags:        []string{"ML", "Sales", "Prediction"},
	},
}
