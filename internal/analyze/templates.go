package analyze

import "github.com/mvoren/clauselens/internal/model"

// clauseTemplate carries the fixed interpretation text for one generated
// clause. Simple may contain a %s slot for the document type noun.
type clauseTemplate struct {
	Title  string
	Simple string
	Why    string
	Risk   model.RiskLevel
}

// docTypeNouns names each document type in running text
var docTypeNouns = map[DocumentType]string{
	DocEmployment:  "employment agreement",
	DocRealEstate:  "real estate agreement",
	DocLoan:        "loan agreement",
	DocPurchase:    "purchase agreement",
	DocPartnership: "partnership agreement",
	DocService:     "service agreement",
	DocGeneral:     "agreement",
}

// introTemplates provides the always-emitted introductory clause per
// document type
var introTemplates = map[DocumentType]clauseTemplate{
	DocEmployment: {
		Title:  "Employment Relationship",
		Simple: "This document establishes an employment relationship and sets out the duties, compensation, and conditions of the job.",
		Why:    "The framing of the relationship determines which rights and protections apply to you as a worker.",
		Risk:   model.RiskLow,
	},
	DocRealEstate: {
		Title:  "Property Agreement Overview",
		Simple: "This document governs the use, lease, or transfer of real property between the parties.",
		Why:    "Property agreements carry long-term financial commitments and obligations tied to the premises.",
		Risk:   model.RiskLow,
	},
	DocLoan: {
		Title:  "Loan Agreement Overview",
		Simple: "This document records a loan: one party lends money and the other agrees to repay it under stated terms.",
		Why:    "Loan terms determine your total repayment cost and what happens if payments are missed.",
		Risk:   model.RiskLow,
	},
	DocPurchase: {
		Title:  "Purchase Agreement Overview",
		Simple: "This document covers the sale of goods or assets, including what is sold, for how much, and when.",
		Why:    "Purchase terms allocate the risk of defects, delays, and non-delivery between buyer and seller.",
		Risk:   model.RiskLow,
	},
	DocPartnership: {
		Title:  "Partnership Overview",
		Simple: "This document sets up a business relationship where the parties share responsibilities and profits.",
		Why:    "Partnership terms decide how decisions are made, how money is split, and how disputes are resolved.",
		Risk:   model.RiskLow,
	},
	DocService: {
		Title:  "Service Agreement Overview",
		Simple: "This document defines services one party performs for another, including scope, quality, and payment.",
		Why:    "Service terms determine what you can demand, what you owe, and how the engagement can end.",
		Risk:   model.RiskLow,
	},
	DocGeneral: {
		Title:  "Document Introduction",
		Simple: "This document is a general agreement establishing obligations between the parties.",
		Why:    "Understanding the overall structure helps put the specific clauses below in context.",
		Risk:   model.RiskLow,
	},
}

// topicClauseTemplates provides one clause per detected topic. Termination's
// risk is elevated to high when penalty keywords co-occur in the document.
var topicClauseTemplates = map[Topic]clauseTemplate{
	TopicPayment: {
		Title:  "Payment Terms",
		Simple: "This %s specifies when and how money must be paid, including amounts and deadlines.",
		Why:    "Missed or late payments can trigger extra charges or give the other party grounds to end the agreement.",
		Risk:   model.RiskMedium,
	},
	TopicTermination: {
		Title:  "Termination Conditions",
		Simple: "This %s describes how and when the agreement can be ended by either party.",
		Why:    "Termination terms control your exit options and any costs attached to leaving early.",
		Risk:   model.RiskMedium,
	},
	TopicLiability: {
		Title:  "Liability and Risk Allocation",
		Simple: "This %s assigns responsibility for losses, damages, or legal claims between the parties.",
		Why:    "Liability language can make you responsible for costs far beyond the value of the agreement itself.",
		Risk:   model.RiskHigh,
	},
	TopicRenewal: {
		Title:  "Renewal Terms",
		Simple: "This %s addresses whether and how the agreement extends past its initial term.",
		Why:    "Automatic renewal can lock you in for another term unless you act before a deadline.",
		Risk:   model.RiskMedium,
	},
	TopicArbitration: {
		Title:  "Dispute Resolution",
		Simple: "This %s requires disagreements to be resolved through arbitration rather than in court.",
		Why:    "Arbitration clauses typically waive your right to sue or join class actions, and outcomes are hard to appeal.",
		Risk:   model.RiskHigh,
	},
	TopicIntellectualProperty: {
		Title:  "Intellectual Property Rights",
		Simple: "This %s determines who owns creations, inventions, or content produced under the agreement.",
		Why:    "IP assignments can transfer ownership of your work, sometimes beyond the scope of the engagement.",
		Risk:   model.RiskMedium,
	},
	TopicConfidentiality: {
		Title:  "Confidentiality Requirements",
		Simple: "This %s restricts what information you may share about the other party or the agreement.",
		Why:    "Confidentiality duties often survive the agreement and can limit future work or disclosures.",
		Risk:   model.RiskMedium,
	},
	TopicWarranty: {
		Title:  "Warranties and Guarantees",
		Simple: "This %s states what each party promises about quality, condition, or performance.",
		Why:    "Warranty disclaimers can leave you without recourse if what you receive is defective.",
		Risk:   model.RiskMedium,
	},
	TopicCompliance: {
		Title:  "Legal Compliance",
		Simple: "This %s requires the parties to follow specified laws and regulations.",
		Why:    "Compliance obligations can impose audits, certifications, or liability for regulatory failures.",
		Risk:   model.RiskLow,
	},
	TopicPenalty: {
		Title:  "Penalties and Charges",
		Simple: "This %s imposes specific monetary consequences for breaking its terms.",
		Why:    "Penalty provisions quantify exactly what a misstep costs you, and they are usually enforceable.",
		Risk:   model.RiskHigh,
	},
	TopicInsurance: {
		Title:  "Insurance Requirements",
		Simple: "This %s requires one or both parties to carry insurance coverage.",
		Why:    "Failing to maintain required coverage can itself be a breach, separate from any actual loss.",
		Risk:   model.RiskMedium,
	},
	TopicEmployment: {
		Title:  "Employment Terms",
		Simple: "This %s sets out duties, compensation, and conditions of the working relationship.",
		Why:    "Employment terms define your pay, your obligations, and how the relationship can end.",
		Risk:   model.RiskMedium,
	},
	TopicRealEstate: {
		Title:  "Property Provisions",
		Simple: "This %s covers rights and obligations relating to real property or premises.",
		Why:    "Property obligations such as maintenance, deposits, and access rules carry ongoing costs.",
		Risk:   model.RiskMedium,
	},
	TopicPurchase: {
		Title:  "Purchase and Delivery",
		Simple: "This %s addresses what is being bought, the price, and how delivery happens.",
		Why:    "Delivery and acceptance terms decide when risk passes to you and when payment becomes due.",
		Risk:   model.RiskMedium,
	},
	TopicService: {
		Title:  "Scope of Services",
		Simple: "This %s defines what services are provided and to what standard.",
		Why:    "A vague scope invites disputes about what was actually promised.",
		Risk:   model.RiskLow,
	},
	TopicLoan: {
		Title:  "Loan Terms",
		Simple: "This %s sets the amount borrowed, the interest, and the repayment schedule.",
		Why:    "Interest and repayment mechanics determine the true cost of the loan over its life.",
		Risk:   model.RiskMedium,
	},
	TopicPartnership: {
		Title:  "Partnership Structure",
		Simple: "This %s defines how the partners share control, profits, and losses.",
		Why:    "Partnership structure determines your exposure to the business's debts and decisions.",
		Risk:   model.RiskMedium,
	},
	TopicDataPrivacy: {
		Title:  "Data and Privacy",
		Simple: "This %s governs how personal or business data is collected, used, and protected.",
		Why:    "Data obligations can carry regulatory penalties and restrict how you operate.",
		Risk:   model.RiskMedium,
	},
}

// fillerTemplates supplies document-type-specific clauses appended when
// keyword detection produced too few, so the result is never thin
var fillerTemplates = map[DocumentType][]clauseTemplate{
	DocEmployment: {
		{
			Title:  "Compensation and Benefits",
			Simple: "Employment agreements normally state salary, benefits, and how raises or bonuses work.",
			Why:    "Anything not written down here is usually not enforceable later.",
			Risk:   model.RiskMedium,
		},
		{
			Title:  "Restrictive Covenants",
			Simple: "Employment agreements often limit where you can work or who you can contact after leaving.",
			Why:    "Non-compete and non-solicit terms can restrict your next job.",
			Risk:   model.RiskHigh,
		},
		{
			Title:  "Working Conditions",
			Simple: "Hours, location, and reporting expectations are typically fixed by the agreement.",
			Why:    "These terms set the baseline the employer can hold you to.",
			Risk:   model.RiskLow,
		},
	},
	DocRealEstate: {
		{
			Title:  "Deposits and Fees",
			Simple: "Property agreements usually require deposits and define when they are forfeited.",
			Why:    "Deposit conditions decide how much money is at stake if things go wrong.",
			Risk:   model.RiskMedium,
		},
		{
			Title:  "Maintenance and Repairs",
			Simple: "Responsibility for upkeep of the premises is divided between the parties.",
			Why:    "Unclear maintenance duties are a common source of unexpected costs.",
			Risk:   model.RiskMedium,
		},
		{
			Title:  "Use of Premises",
			Simple: "The agreement restricts what the property may be used for.",
			Why:    "Violating use restrictions can be grounds for eviction or termination.",
			Risk:   model.RiskLow,
		},
	},
	DocLoan: {
		{
			Title:  "Interest Rate and Payment Schedule",
			Simple: "Loan agreements state the interest rate and when each payment is due.",
			Why:    "The rate and schedule determine the total amount you will repay.",
			Risk:   model.RiskMedium,
		},
		{
			Title:  "Collateral",
			Simple: "Loans are often secured by property the lender can take if you default.",
			Why:    "Secured loans put the named collateral directly at risk.",
			Risk:   model.RiskHigh,
		},
		{
			Title:  "Default and Acceleration",
			Simple: "Missing payments can make the entire remaining balance due immediately.",
			Why:    "Acceleration clauses turn one missed payment into a demand for everything owed.",
			Risk:   model.RiskHigh,
		},
	},
	DocPurchase: {
		{
			Title:  "Price and Payment",
			Simple: "Purchase agreements fix the price and the payment method.",
			Why:    "Price terms decide what you owe and when title changes hands.",
			Risk:   model.RiskMedium,
		},
		{
			Title:  "Inspection and Acceptance",
			Simple: "The buyer usually has a limited window to inspect and reject the goods.",
			Why:    "Missing the inspection window can waive your right to complain about defects.",
			Risk:   model.RiskMedium,
		},
		{
			Title:  "Risk of Loss",
			Simple: "The agreement states who bears the loss if goods are damaged in transit.",
			Why:    "Risk allocation decides who pays when something is lost before delivery.",
			Risk:   model.RiskMedium,
		},
	},
	DocPartnership: {
		{
			Title:  "Capital Contributions",
			Simple: "Each partner's required investment is recorded in the agreement.",
			Why:    "Contribution terms determine ownership stakes and future funding duties.",
			Risk:   model.RiskMedium,
		},
		{
			Title:  "Decision Making",
			Simple: "The agreement sets who decides what, and by what vote.",
			Why:    "Governance terms determine whether you can be outvoted on matters that affect you.",
			Risk:   model.RiskMedium,
		},
		{
			Title:  "Partner Exit",
			Simple: "Rules for a partner leaving, including valuation of their share, are fixed here.",
			Why:    "Exit terms decide what your stake is worth if the relationship ends.",
			Risk:   model.RiskMedium,
		},
	},
	DocService: {
		{
			Title:  "Service Levels",
			Simple: "Service agreements often define measurable quality or availability targets.",
			Why:    "Without service levels there is little recourse for poor performance.",
			Risk:   model.RiskLow,
		},
		{
			Title:  "Change Requests",
			Simple: "Changes to scope typically require a written process and may cost extra.",
			Why:    "Informal scope changes are a common source of billing disputes.",
			Risk:   model.RiskLow,
		},
		{
			Title:  "Independent Contractor Status",
			Simple: "The provider is usually engaged as an independent contractor, not an employee.",
			Why:    "Contractor status shifts tax and benefit obligations onto the provider.",
			Risk:   model.RiskMedium,
		},
	},
	DocGeneral: {
		{
			Title:  "General Obligations",
			Simple: "The agreement imposes ongoing duties on both parties.",
			Why:    "Obligations you overlook are still binding.",
			Risk:   model.RiskLow,
		},
		{
			Title:  "Governing Law",
			Simple: "Disputes are interpreted under a specific jurisdiction's law.",
			Why:    "The chosen jurisdiction can make enforcement more costly or less favorable for you.",
			Risk:   model.RiskMedium,
		},
		{
			Title:  "Entire Agreement",
			Simple: "Only what is written in the document counts; side promises do not.",
			Why:    "Verbal assurances are typically unenforceable once this clause is in place.",
			Risk:   model.RiskLow,
		},
	},
}
