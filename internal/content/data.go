package content

func wirelessResume() *Resume {
	return &Resume{
		Hero: Hero{
			Tagline:     "Research Engineer & Developer",
			MainText:    []string{"Interests in optical", "communications and", "beyond 5G networks."},
			Description: "Exploring Free Space Optical communications and 5G-beyond networks through AI-assisted signal processing and simulation frameworks.",
		},
		Projects: []Project{
			{
				Title:       "BeamLabs: Optical Light Beam Modeling Suite",
				Description: "Designed an Object-Oriented MATLAB library to model 14 optical beam types for ongoing and future research in Quantum Optics and RF communication systems.",
				Role:        "Research Developer",
				Year:        "Dec 2024 — Mar 2025",
				Slug:        "beamlabs",
				Image:       "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=800&auto=format&fit=crop&q=80",
				Outcome:     "Improved eigen-mode analysis speeds by 30%",
				Detail: &Detail{
					Client:   "VIT Wireless and Communication Lab",
					Duration: "4 months",
					Overview: Overview{
						Problem:  "Beam simulations for each study were rebuilt from scratch, with subtly different conventions for the same beam families.",
						Solution: "A single object-oriented MATLAB library covering 14 beam types behind one consistent interface for propagation, intensity and phase analysis.",
						Impact:   "Eigen-mode analysis ran 30% faster and new studies started from a shared, validated baseline.",
					},
					Process: []Step{
						{Title: "Survey", Description: "Catalogued the beam families used across lab studies and the parameters each one needs."},
						{Title: "Class design", Description: "Built a common beam base class with specialised Laguerre-Gaussian, Hermite-Gaussian and Bessel subclasses."},
						{Title: "Validation", Description: "Checked field profiles against closed-form results before using them in channel studies."},
						{Title: "Adoption", Description: "Documented the API and moved two ongoing studies onto the library."},
					},
					Reflection: "Most of the speedup came from consistency, not clever maths: once every beam shared one representation, the slow conversions simply disappeared.",
				},
			},
			{
				Title:       "OAM-Multiplexed Beam Recovery via Turbulent Channel using Deep Learning",
				Description: "Developed a ResNet-18 CNN receiver to recover QPSK symbols from intensity-only optical images, aiming to eliminate the need for wavefront sensors, lowering link complexity by 40%.",
				Role:        "Research Engineer",
				Year:        "Jan 2025 — Aug 2025",
				Slug:        "oam-beam-recovery",
				Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&auto=format&fit=crop&q=80",
				Outcome:     "Reduced Bit Error Rate (BER) by 20%",
			},
			{
				Title:       "Python-informed Mode Switching RL Framework for 5G-beyond Network Targets",
				Description: "Developed a physics-aware RL framework complying with 5G-beyond KPI targets, optimally switching OAM modes to current environment and signal conditions, achieving sub-0.1 ms latency.",
				Role:        "Research Engineer",
				Year:        "Oct 2025 — Present",
				Slug:        "rl-5g-framework",
				Image:       "https://images.unsplash.com/photo-1518770660439-4636190af475?w=800&auto=format&fit=crop&q=80",
				Outcome:     "80+% prediction accuracy across scenarios",
			},
			{
				Title:       "6G OAM-THz Channel Dataset: ITU-R IMT-2030 Compliant",
				Description: "Published the first physics-based dataset with 250k+ realistic samples for OAM beam communications at sub-Terahertz/mmWave frequencies (300-600 GHz).",
				Role:        "Research Contributor",
				Year:        "Aug 2025",
				Slug:        "6g-dataset",
				Image:       "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=800&auto=format&fit=crop&q=80",
				Outcome:     "Published on IEEE Dataport",
			},
		},
		Experience: []Experience{
			{
				Role:        "Senior Software Engineering Intern - iOS Development",
				Company:     "Chamberly AB",
				Period:      "Dec 2023 — Sep 2024",
				Description: "Optimized app performance and navigation flow, reducing user steps by 27% and latency by 12%. Structured backend systems for reliable Apple Push Notifications, increasing user retention by 22%. Integrated feature updates in an Agile environment, contributing to a 19% increase in Monthly Active Users (MAU).",
			},
			{
				Role:        "Summer Research Assistant",
				Company:     "VIT Wireless and Communication Lab",
				Period:      "May 2025 — July 2025",
				Description: "Validated fundamental Wireless and Mobile Communication (WMC) concepts through lab experiments, focusing on signal propagation models and modulation techniques. Spearheaded research synthesis for optical communication studies with international research teams to align simulation frameworks and validate results.",
			},
		},
		Skills: []Skill{
			{Category: "RF & Simulation Tools", Items: []string{"Cadence Virtuoso", "Cadence AWR", "LTSpice", "ModelSim", "NI Multisim", "NetSim", "Optiwave", "MATLAB"}},
			{Category: "Languages", Items: []string{"Python", "Java", "R", "MATLAB", "Embedded C", "C++", "Verilog HDL", "Swift", "UIKit", "Assembly"}},
			{Category: "Core Domains", Items: []string{"Free Space Optical Communications (FSO)", "5G-beyond Networks", "Signal Processing", "Machine Learning", "AI", "Deep Learning"}},
			{Category: "DevOps & Cloud", Items: []string{"Docker", "Git", "CI/CD", "Jenkins", "AWS", "GCP"}},
		},
		About: About{
			Title: "Final-year Electronics and Communication Engineering student researching Free Space Optical communications and beyond 5G networks.",
			Bio: []string{
				"I'm pursuing proficiency in Free Space Optical (FSO) communications and Telecommunication Networks, currently exploring opportunities in MATLAB/Python-based simulation frameworks using AI-assisted signal processing for OAM-enabled beyond 5G wireless development.",
				"My research focuses on physics-informed machine learning approaches that bridge simulation and reality. I develop deep learning models for signal recovery, reinforcement learning frameworks for network optimization, and comprehensive datasets that advance the field of optical and wireless communications.",
				"Currently studying at Vellore Institute of Technology, expected to graduate in August 2026. I'm eager to learn from industry experts and contribute to solving real-world problems in telecommunications and optical communications.",
			},
		},
		Principles: []Principle{
			{Number: "01", Title: "Physics-informed approaches", Description: "Every simulation and model respects the underlying principles of electromagnetic propagation. I prioritize accuracy and physical realism over computational convenience."},
			{Number: "02", Title: "Simulation-to-reality bridge", Description: "Research should translate to practical applications. I focus on reducing the gap between theoretical models and real-world deployment in wireless systems."},
			{Number: "03", Title: "AI-assisted signal processing", Description: "Combining deep learning with classical signal processing techniques to solve complex problems in optical and wireless communications."},
		},
		Work: WorkCopy{
			Heading: "Research projects advancing optical and wireless communications.",
			Intro:   "Each project represents a commitment to advancing wireless communications through physics-informed research and AI-assisted signal processing.",
		},
		Contact: ContactCopy{
			Headline:     "Let's advance wireless communications research together.",
			Intro:        "Whether you're interested in research collaboration, have opportunities in FSO communications or 5G-beyond networks, or want to discuss my work—I'd love to connect.",
			PitchTitle:   "Research & Opportunities",
			Pitch:        "Currently seeking research opportunities, internships, and collaborations in Free Space Optical communications, 5G-beyond networks, and AI-assisted signal processing.",
			Availability: "Final-year undergraduate, graduating Aug 2026",
		},
	}
}

func aiMLResume() *Resume {
	return &Resume{
		Hero: Hero{
			Tagline:     "Software Engineer & ML Researcher",
			MainText:    []string{"Building intelligent", "systems and scalable", "solutions."},
			Description: "Developing machine learning models and software systems that solve real-world problems through AI-driven innovation and enterprise-grade architecture.",
		},
		Projects: []Project{
			{
				Title:       "Flux: AI-Powered Fintech Ecosystem",
				Description: "Pioneered Flux, a SwiftUI expense ecosystem integrating AI (Google Gemini 2.5 Flash), blockchain transparency, and IoT automation—architecting India's first comprehensive fintech platform.",
				Role:        "Lead Developer",
				Year:        "Fall 2024 — Ongoing",
				Slug:        "flux-fintech",
				Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&auto=format&fit=crop&q=80",
				Outcome:     "Sub-200ms response times, 100K+ concurrent user scalability",
				Detail: &Detail{
					Client:   "Independent",
					Duration: "Ongoing",
					Overview: Overview{
						Problem:  "Expense tracking apps stop at recording numbers; categorisation, verification and automation are left to the user.",
						Solution: "A SwiftUI client backed by Gemini for categorisation and insights, a ledger for tamper-evident records, and IoT hooks for automatic capture.",
						Impact:   "Sub-200ms responses under load tests simulating more than 100K concurrent users.",
					},
					Process: []Step{
						{Title: "Domain mapping", Description: "Broke personal finance into capture, classification, verification and reporting flows."},
						{Title: "AI integration", Description: "Wrapped Gemini calls behind a small service with caching and graceful fallbacks."},
						{Title: "Ledger", Description: "Anchored transaction digests on-chain so records can be audited later."},
						{Title: "Scale testing", Description: "Load tested the backend and tuned hot paths until latency targets held."},
					},
					Reflection: "Combining three hyped technologies only worked once each had a narrow, boring job. The interesting part was deciding what not to automate.",
				},
			},
			{
				Title:       "Stock Price Prediction with Geopolitical Risks",
				Description: "Built a stock prediction model using StockNet (88 stocks, 2014-16) and the GPR Index, integrating price trends, tweets, and GPR factors. Enhanced market modeling by incorporating EIA crude oil price data.",
				Role:        "ML Engineer",
				Year:        "Winter 2025 — Ongoing",
				Slug:        "stock-prediction-gpr",
				Image:       "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800&auto=format&fit=crop&q=80",
				Outcome:     "State-of-the-art accuracy in forecasting stock trends",
			},
			{
				Title:       "Sentiment Analysis for Stock Market Trends Using VADER",
				Description: "Engineered VADER-based sentiment analysis, integrating NewsAPI and AlphaVantage to enable real-time market insights. Deployed scalable ML model on AWS SageMaker, enhancing system resilience by 25% and cutting cloud costs by 30%.",
				Role:        "ML Engineer",
				Year:        "Fall 2024",
				Slug:        "sentiment-analysis-vader",
				Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&auto=format&fit=crop&q=80",
				Outcome:     "Reduced data processing time by 40%, improved trend accuracy by 15%",
			},
		},
		Experience: []Experience{
			{
				Role:        "Senior Core Committee - Machine Learning Core",
				Company:     "IEEE CommSoc VIT",
				Period:      "Jan 2025 — Present",
				Description: "Spearheaded VIT's largest CTF; increased IEEE CommSoc engagement by 40% via ML and cybersecurity challenges. Organized ConnecTRON, a 500+ participant AI/ML, Embedded C, and IoT event, driving 20+ UN SDG-aligned projects. Mentored ML teams, overseeing 5 projects and developing an IEEE-adopted ML curriculum, boosting proficiency by 30%.",
			},
			{
				Role:        "Senior iOS Mentor",
				Company:     "Advanced Developer Group (ADG) VIT",
				Period:      "Jun 2024 — Present",
				Description: "Led iOS development workshops and mentoring sessions for over 50 students, resulting in a 40% increase in successful app submissions to the App Store and a 25% improvement in student performance in iOS-related coursework. Guided ADG teams to victory in 3 regional hackathons, focusing on innovative iOS app solutions for healthcare and education.",
			},
			{
				Role:        "Senior iOS App Development Intern",
				Company:     "Chamberly AB",
				Period:      "Dec 2023 — May 2024",
				Description: "Optimized push notifications, boosting engagement by 30% and reducing app abandonment by 20%. Revamped UI with SwiftUI, improving satisfaction by 25% and cutting support tickets by 40%. Streamlined navigation, reducing user steps by 35% and enhancing performance by 15%. Led feature integration and bug fixes, contributing to a 4.5-star rating and 22% MAU growth.",
			},
		},
		Skills: []Skill{
			{Category: "Languages", Items: []string{"Python", "Embedded C", "Java", "MATLAB", "R", "Assembly (x51, x86)", "SwiftUI", "UIKit", "C++"}},
			{Category: "ML/AI & Data Science", Items: []string{"VADER Sentiment Analysis", "LSTM Networks", "Neural Variational Inference", "StockNet", "AWS SageMaker", "Deep Generative Models"}},
			{Category: "DevOps & Tools", Items: []string{"Git", "CI/CD", "Docker", "PostgreSQL", "Redis", "Microservices Architecture"}},
			{Category: "Software & Platforms", Items: []string{"Cadence Virtuoso", "ModelSim", "NetSim", "MultiSim", "Keil uVision", "Cadence AWR", "CST Studio", "Adobe Photoshop CC"}},
		},
		About: About{
			Title: "Final-year Electronics and Communications Engineering student specializing in Machine Learning, AI, and iOS development.",
			Bio: []string{
				"I'm passionate about building intelligent systems that solve real-world problems. My work spans machine learning research, iOS app development, and enterprise-grade software architecture.",
				"Currently leading ML initiatives at IEEE CommSoc VIT, where I've organized large-scale events and developed curriculum that's been adopted by IEEE. I've also mentored iOS developers, helping teams win hackathons and launch successful apps.",
				"My projects include Flux—a comprehensive fintech platform integrating AI, blockchain, and IoT—and advanced stock prediction models using LSTM networks and geopolitical risk factors. I'm always exploring new ways to combine cutting-edge technology with practical applications.",
			},
		},
		Principles: []Principle{
			{Number: "01", Title: "Data-driven innovation", Description: "Every solution starts with understanding the data. I leverage machine learning and analytics to uncover insights that drive meaningful impact."},
			{Number: "02", Title: "Scalable architecture", Description: "Building systems that can grow is essential. I design enterprise-grade architectures that handle scale while maintaining performance and reliability."},
			{Number: "03", Title: "Cross-disciplinary learning", Description: "The best solutions come from combining different domains. I integrate AI, mobile development, blockchain, and IoT to create innovative ecosystems."},
		},
		Work: WorkCopy{
			Heading: "Machine learning and software projects built for real users.",
			Intro:   "From fintech platforms to market forecasting, each project pairs applied ML with software engineering that holds up at scale.",
		},
		Contact: ContactCopy{
			Headline:     "Let's build intelligent systems together.",
			Intro:        "Whether you have a role in ML or software engineering, a project that needs an extra pair of hands, or just want to talk shop—I'd love to hear from you.",
			PitchTitle:   "Roles & Collaborations",
			Pitch:        "Open to software engineering and machine learning internships, research collaborations, and iOS projects.",
			Availability: "Final-year undergraduate, graduating Aug 2026",
		},
	}
}

// caseStudies are full project write-ups linked directly by slug.
func caseStudies() []Project {
	return []Project{
		{
			Title:       "Meridian Design System",
			Description: "A unified design system with 200+ components for a suite of twelve enterprise products.",
			Role:        "Lead Designer",
			Year:        "2024",
			Slug:        "meridian-design-system",
			Detail: &Detail{
				Client:    "Enterprise SaaS Company",
				Duration:  "8 months",
				HeroImage: "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?w=1200&auto=format&fit=crop&q=80",
				Overview: Overview{
					Problem:  "The client had 12 different products with inconsistent UI patterns, causing user confusion and slowing down development cycles.",
					Solution: "Created a unified design system with 200+ components, comprehensive documentation, and a Figma library synced with the development codebase.",
					Impact:   "Reduced design-to-development handoff time by 60% and improved user satisfaction scores by 35%.",
				},
				Process: []Step{
					{Title: "Discovery & Audit", Description: "Conducted a comprehensive audit of all 12 products, cataloging 847 unique UI patterns and identifying opportunities for consolidation."},
					{Title: "Foundation", Description: "Established core design tokens for color, typography, spacing, and elevation. Built a flexible grid system that works across all product contexts."},
					{Title: "Component Library", Description: "Designed and documented 200+ components with multiple variants, states, and accessibility considerations built-in."},
					{Title: "Governance", Description: "Created contribution guidelines, review processes, and training materials to ensure the system scales with the organization."},
				},
				Images: []string{
					"https://images.unsplash.com/photo-1558655146-9f40138edfeb?w=1200&auto=format&fit=crop&q=80",
					"https://images.unsplash.com/photo-1561070791-2526d30994b5?w=1200&auto=format&fit=crop&q=80",
				},
				Reflection: "This project reinforced my belief that design systems are as much about people as they are about pixels. The technical implementation was straightforward; the real challenge was building consensus across teams and creating a culture of contribution.",
			},
		},
		{
			Title:       "Luminary Dashboard",
			Description: "A task-focused redesign of an analytics dashboard.",
			Role:        "Product Designer",
			Year:        "2024",
			Slug:        "luminary-dashboard",
			Detail: &Detail{
				Client:    "Analytics Startup",
				Duration:  "4 months",
				HeroImage: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=1200&auto=format&fit=crop&q=80",
				Overview: Overview{
					Problem:  "Users were spending an average of 12 minutes to complete basic reporting tasks due to a cluttered, confusing interface.",
					Solution: "Redesigned the dashboard with a focus on task-based workflows, progressive disclosure, and intelligent defaults.",
					Impact:   "40% improvement in task completion rates and 60% reduction in support tickets related to UI confusion.",
				},
				Process: []Step{
					{Title: "User Research", Description: "Conducted 24 user interviews and analyzed session recordings to identify pain points and workflow patterns."},
					{Title: "Information Architecture", Description: "Restructured the navigation and data hierarchy based on actual usage patterns rather than organizational silos."},
					{Title: "Prototyping", Description: "Created high-fidelity prototypes and tested with users through 3 iteration cycles before development."},
					{Title: "Implementation", Description: "Worked closely with engineering to ensure the design vision was maintained through development."},
				},
				Images: []string{
					"https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=1200&auto=format&fit=crop&q=80",
					"https://images.unsplash.com/photo-1504868584819-f8e8b4b6d7e3?w=1200&auto=format&fit=crop&q=80",
				},
				Reflection: "Data visualization is about storytelling, not decoration. The most impactful change was removing 70% of the original interface elements; what remained was exactly what users needed.",
			},
		},
	}
}
