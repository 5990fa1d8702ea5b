// Package prompts holds the static drill question corpus and selection logic.
package prompts

import "clarity/internal/domain"

// DomainInfo pairs a domain identifier with its display label.
type DomainInfo struct {
	ID    domain.Domain `json:"id"`
	Label string        `json:"label"`
}

// AllDomains lists every selectable domain.
var AllDomains = []DomainInfo{
	{ID: domain.DomainMarketing, Label: "Marketing"},
	{ID: domain.DomainAI, Label: "AI & ML"},
	{ID: domain.DomainProduct, Label: "Product"},
	{ID: domain.DomainStrategy, Label: "Strategy"},
	{ID: domain.DomainFinance, Label: "Finance"},
	{ID: domain.DomainEngineering, Label: "Engineering"},
	{ID: domain.DomainDesign, Label: "Design"},
	{ID: domain.DomainSales, Label: "Sales"},
	{ID: domain.DomainOperations, Label: "Operations"},
	{ID: domain.DomainLeadership, Label: "Leadership"},
}

// TypeLabel describes a question type for the UI.
type TypeLabel struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// TypeLabels maps each question type to its display copy.
var TypeLabels = map[domain.QuestionType]TypeLabel{
	domain.QuestionBigPicture: {Label: "Big Picture", Description: "30,000-foot strategic thinking"},
	domain.QuestionDrillDown:  {Label: "Drill Down", Description: "Tactical, step-by-step execution"},
	domain.QuestionCurveball:  {Label: "Curveball", Description: "React to unexpected scenarios"},
	domain.QuestionDefend:     {Label: "Defend a Position", Description: "Build a compelling argument"},
	domain.QuestionSimplify:   {Label: "Simplify", Description: "Explain complex ideas simply"},
}

// Corpus is the static prompt library.
var Corpus = []domain.Prompt{
	{ID: "bp-1", Text: "Where do you see the marketing industry heading in the next 3 years?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainStrategy}},
	{ID: "bp-2", Text: "What's your take on the future of AI in everyday business operations?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainAI, domain.DomainStrategy, domain.DomainOperations}},
	{ID: "bp-3", Text: "How should companies think about building vs. buying technology?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainEngineering, domain.DomainStrategy, domain.DomainProduct}},
	{ID: "bp-4", Text: "What does the ideal product organization look like in 2026?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainProduct, domain.DomainLeadership}},
	{ID: "bp-5", Text: "How is the role of the CMO evolving?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainLeadership, domain.DomainStrategy}},
	{ID: "bp-6", Text: "What's the biggest risk companies face with AI adoption?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainAI, domain.DomainStrategy, domain.DomainLeadership}},
	{ID: "bp-7", Text: "How should organizations think about data strategy in 2026?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainAI, domain.DomainStrategy, domain.DomainEngineering}},
	{ID: "bp-8", Text: "What defines a great go-to-market strategy today?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainSales, domain.DomainProduct}},
	{ID: "bp-9", Text: "How do you see the relationship between design and business strategy evolving?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainDesign, domain.DomainStrategy}},
	{ID: "bp-10", Text: "What's your view on the future of remote work and its impact on culture?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainLeadership, domain.DomainOperations}},
	{ID: "bp-11", Text: "How should companies balance growth and profitability?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainFinance, domain.DomainStrategy, domain.DomainLeadership}},
	{ID: "bp-12", Text: "What's the most underrated trend in your industry right now?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainStrategy, domain.DomainMarketing}},
	{ID: "bp-13", Text: "How do you think about competitive moats in the age of AI?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainStrategy, domain.DomainAI, domain.DomainProduct}},
	{ID: "bp-14", Text: "What role should finance play in strategic decision-making?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainFinance, domain.DomainStrategy, domain.DomainLeadership}},
	{ID: "bp-15", Text: "How is the sales function being transformed by technology?", Type: domain.QuestionBigPicture, Domains: []domain.Domain{domain.DomainSales, domain.DomainAI, domain.DomainStrategy}},

	{ID: "dd-1", Text: "Walk me through how you'd launch a product in a new market segment.", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainProduct, domain.DomainStrategy}},
	{ID: "dd-2", Text: "How would you evaluate an AI tool before adopting it for your team?", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainAI, domain.DomainOperations, domain.DomainEngineering}},
	{ID: "dd-3", Text: "Describe your process for prioritizing a product roadmap.", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainProduct, domain.DomainStrategy, domain.DomainEngineering}},
	{ID: "dd-4", Text: "How would you set up a marketing attribution model from scratch?", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainFinance}},
	{ID: "dd-5", Text: "Walk me through how you'd build a financial model for a new initiative.", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainFinance, domain.DomainStrategy}},
	{ID: "dd-6", Text: "How would you restructure a sales team that's consistently missing targets?", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainSales, domain.DomainLeadership, domain.DomainOperations}},
	{ID: "dd-7", Text: "Describe how you'd run a design sprint for a critical feature.", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainDesign, domain.DomainProduct, domain.DomainEngineering}},
	{ID: "dd-8", Text: "How would you implement OKRs for a team that's never used them?", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainLeadership, domain.DomainOperations}},
	{ID: "dd-9", Text: "Walk me through your approach to a content marketing strategy.", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainStrategy}},
	{ID: "dd-10", Text: "How would you set up an A/B testing program for a website?", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainProduct, domain.DomainEngineering}},
	{ID: "dd-11", Text: "Describe how you'd migrate a monolith to microservices.", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainEngineering, domain.DomainOperations}},
	{ID: "dd-12", Text: "How would you build a customer feedback loop from scratch?", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainProduct, domain.DomainDesign, domain.DomainOperations}},
	{ID: "dd-13", Text: "Walk me through how you'd negotiate a key partnership deal.", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainSales, domain.DomainStrategy}},
	{ID: "dd-14", Text: "How would you reduce customer acquisition cost by 30%?", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainFinance, domain.DomainSales}},
	{ID: "dd-15", Text: "Describe your approach to building a design system.", Type: domain.QuestionDrillDown, Domains: []domain.Domain{domain.DomainDesign, domain.DomainEngineering, domain.DomainProduct}},

	{ID: "cb-1", Text: "Your biggest competitor just launched an AI feature that's getting rave reviews. What do you do?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainStrategy, domain.DomainProduct, domain.DomainAI}},
	{ID: "cb-2", Text: "Your top performer just quit and took two team members. How do you respond?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainLeadership, domain.DomainOperations}},
	{ID: "cb-3", Text: "The CEO just told you to cut your budget by 40%. What stays and what goes?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainFinance, domain.DomainStrategy, domain.DomainLeadership}},
	{ID: "cb-4", Text: "A viral tweet is criticizing your company's product. What's your playbook?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainLeadership}},
	{ID: "cb-5", Text: "Your product launch date is in 2 weeks and your lead engineer says the core feature isn't ready. What do you do?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainProduct, domain.DomainEngineering, domain.DomainLeadership}},
	{ID: "cb-6", Text: "A major client threatens to leave unless you match a competitor's price. How do you handle it?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainSales, domain.DomainStrategy, domain.DomainFinance}},
	{ID: "cb-7", Text: "Your data pipeline breaks during a product demo to investors. What do you say?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainEngineering, domain.DomainSales, domain.DomainLeadership}},
	{ID: "cb-8", Text: "Your team disagrees with the strategy you've set. How do you handle the pushback?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainLeadership, domain.DomainStrategy}},
	{ID: "cb-9", Text: "Google just released a free version of the product you charge for. What's your play?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainStrategy, domain.DomainProduct, domain.DomainMarketing}},
	{ID: "cb-10", Text: "Your company's AI model produced a biased output that's in the news. How do you respond?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainAI, domain.DomainLeadership, domain.DomainMarketing}},
	{ID: "cb-11", Text: "The board wants to pivot to a completely different market. How do you evaluate this?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainStrategy, domain.DomainFinance, domain.DomainLeadership}},
	{ID: "cb-12", Text: "Your design team and engineering team are in constant conflict. How do you resolve it?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainDesign, domain.DomainEngineering, domain.DomainLeadership}},
	{ID: "cb-13", Text: "A new regulation just made your primary marketing channel illegal. What now?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainStrategy, domain.DomainOperations}},
	{ID: "cb-14", Text: "Your sales pipeline is full but close rate has dropped to 5%. What's wrong and how do you fix it?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainSales, domain.DomainOperations}},
	{ID: "cb-15", Text: "You just discovered your company's data has been exposed in a breach. What are your first three moves?", Type: domain.QuestionCurveball, Domains: []domain.Domain{domain.DomainEngineering, domain.DomainLeadership, domain.DomainOperations}},

	{ID: "dp-1", Text: "Why should we invest in brand marketing over performance marketing?", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainStrategy, domain.DomainFinance}},
	{ID: "dp-2", Text: "Make the case for building AI internally rather than using third-party tools.", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainAI, domain.DomainEngineering, domain.DomainStrategy}},
	{ID: "dp-3", Text: "Why should product managers own pricing decisions?", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainProduct, domain.DomainFinance, domain.DomainStrategy}},
	{ID: "dp-4", Text: "Argue for investing in employee development over hiring experienced talent.", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainLeadership, domain.DomainOperations, domain.DomainFinance}},
	{ID: "dp-5", Text: "Why should design have a seat at the executive table?", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainDesign, domain.DomainLeadership, domain.DomainStrategy}},
	{ID: "dp-6", Text: "Make the case for a subscription model over one-time purchases.", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainFinance, domain.DomainProduct, domain.DomainStrategy}},
	{ID: "dp-7", Text: "Why should sales reps specialize by vertical rather than geography?", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainSales, domain.DomainStrategy, domain.DomainOperations}},
	{ID: "dp-8", Text: "Argue for prioritizing existing customer expansion over new customer acquisition.", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainSales, domain.DomainMarketing, domain.DomainFinance}},
	{ID: "dp-9", Text: "Why is technical debt worth addressing now rather than later?", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainEngineering, domain.DomainStrategy, domain.DomainFinance}},
	{ID: "dp-10", Text: "Make the case for a fully remote workforce.", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainLeadership, domain.DomainOperations}},
	{ID: "dp-11", Text: "Why should marketing own the customer experience post-sale?", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainOperations, domain.DomainProduct}},
	{ID: "dp-12", Text: "Argue for hiring generalists over specialists in early-stage companies.", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainLeadership, domain.DomainStrategy}},
	{ID: "dp-13", Text: "Why is user research worth the time investment even on tight deadlines?", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainDesign, domain.DomainProduct}},
	{ID: "dp-14", Text: "Make the case for transparency in company financials with all employees.", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainFinance, domain.DomainLeadership}},
	{ID: "dp-15", Text: "Why should AI decisions be explainable even if it reduces accuracy?", Type: domain.QuestionDefend, Domains: []domain.Domain{domain.DomainAI, domain.DomainStrategy, domain.DomainLeadership}},

	{ID: "sm-1", Text: "Explain machine learning to a non-technical executive in under 60 seconds.", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainAI, domain.DomainLeadership}},
	{ID: "sm-2", Text: "How would you explain your company's business model to a 12-year-old?", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainStrategy, domain.DomainProduct}},
	{ID: "sm-3", Text: "Explain why brand matters to someone who only cares about performance metrics.", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainFinance}},
	{ID: "sm-4", Text: "How would you explain product-market fit to someone outside tech?", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainProduct, domain.DomainStrategy}},
	{ID: "sm-5", Text: "Explain cloud computing to someone who's never used a computer.", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainEngineering, domain.DomainAI}},
	{ID: "sm-6", Text: "How would you describe the value of design thinking to a finance person?", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainDesign, domain.DomainFinance}},
	{ID: "sm-7", Text: "Explain what a sales pipeline is to a creative director.", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainSales, domain.DomainDesign}},
	{ID: "sm-8", Text: "How would you explain unit economics to a designer?", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainFinance, domain.DomainDesign, domain.DomainProduct}},
	{ID: "sm-9", Text: "Explain the concept of product strategy to a new engineering hire.", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainProduct, domain.DomainEngineering}},
	{ID: "sm-10", Text: "How would you describe your team's impact to someone in a completely different department?", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainLeadership, domain.DomainOperations}},
	{ID: "sm-11", Text: "Explain why customer segmentation matters to someone who thinks \"everyone is our customer.\"", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainMarketing, domain.DomainStrategy, domain.DomainSales}},
	{ID: "sm-12", Text: "How would you explain API integrations to a marketing team?", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainEngineering, domain.DomainMarketing}},
	{ID: "sm-13", Text: "Explain the difference between strategy and tactics to a junior team member.", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainStrategy, domain.DomainLeadership}},
	{ID: "sm-14", Text: "How would you describe agile methodology to a traditional project manager?", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainEngineering, domain.DomainOperations, domain.DomainProduct}},
	{ID: "sm-15", Text: "Explain generative AI to your parents.", Type: domain.QuestionSimplify, Domains: []domain.Domain{domain.DomainAI}},
}
