package analyze

import "strings"

// Topic is one of the contract subject categories the keyword scan detects
type Topic string

const (
	TopicPayment              Topic = "payment"
	TopicTermination          Topic = "termination"
	TopicLiability            Topic = "liability"
	TopicRenewal              Topic = "renewal"
	TopicArbitration          Topic = "arbitration"
	TopicIntellectualProperty Topic = "intellectual_property"
	TopicConfidentiality      Topic = "confidentiality"
	TopicWarranty             Topic = "warranty"
	TopicCompliance           Topic = "compliance"
	TopicPenalty              Topic = "penalty"
	TopicInsurance            Topic = "insurance"
	TopicEmployment           Topic = "employment"
	TopicRealEstate           Topic = "real_estate"
	TopicPurchase             Topic = "purchase"
	TopicService              Topic = "service"
	TopicLoan                 Topic = "loan"
	TopicPartnership          Topic = "partnership"
	TopicDataPrivacy          Topic = "data_privacy"
)

// topicOrder fixes the enumeration order clause generation follows,
// independent of detection order
var topicOrder = []Topic{
	TopicPayment,
	TopicTermination,
	TopicLiability,
	TopicRenewal,
	TopicArbitration,
	TopicIntellectualProperty,
	TopicConfidentiality,
	TopicWarranty,
	TopicCompliance,
	TopicPenalty,
	TopicInsurance,
	TopicEmployment,
	TopicRealEstate,
	TopicPurchase,
	TopicService,
	TopicLoan,
	TopicPartnership,
	TopicDataPrivacy,
}

var topicKeywords = map[Topic][]string{
	TopicPayment:              {"payment", "payable", "invoice", "compensation", "remuneration", "fee schedule"},
	TopicTermination:          {"termination", "terminate", "cancellation", "cancel this agreement"},
	TopicLiability:            {"liability", "liable", "indemnify", "indemnification", "damages", "hold harmless"},
	TopicRenewal:              {"renewal", "renew", "auto-renew", "automatically extend", "extension term"},
	TopicArbitration:          {"arbitration", "arbitrator", "dispute resolution", "mediation"},
	TopicIntellectualProperty: {"intellectual property", "copyright", "trademark", "patent", "work product", "work for hire"},
	TopicConfidentiality:      {"confidential", "confidentiality", "non-disclosure", "proprietary information", "trade secret"},
	TopicWarranty:             {"warranty", "warranties", "warrants", "as-is", "merchantability"},
	TopicCompliance:           {"compliance", "comply with", "applicable law", "regulations", "regulatory"},
	TopicPenalty:              {"penalty", "penalties", "liquidated damages", "late fee", "fine"},
	TopicInsurance:            {"insurance", "insured", "coverage", "policy limits"},
	TopicEmployment:           {"employment", "employee", "employer", "salary", "job duties", "at-will"},
	TopicRealEstate:           {"real estate", "lease", "premises", "landlord", "tenant", "property"},
	TopicPurchase:             {"purchase", "buyer", "seller", "goods", "delivery of goods"},
	TopicService:              {"services", "service provider", "statement of work", "deliverables"},
	TopicLoan:                 {"loan", "lender", "borrower", "principal amount", "interest rate"},
	TopicPartnership:          {"partnership", "partner", "joint venture", "profit sharing"},
	TopicDataPrivacy:          {"personal data", "data protection", "privacy", "gdpr", "data processing"},
}

// DetectTopics scans the text once, case-insensitively, for every topic's
// keyword set
func DetectTopics(text string) map[Topic]bool {
	lower := strings.ToLower(text)
	found := make(map[Topic]bool)

	for topic, keywords := range topicKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				found[topic] = true
				break
			}
		}
	}

	return found
}

// DocumentType is the closed set of contract categories the heuristic engine
// distinguishes
type DocumentType string

const (
	DocEmployment  DocumentType = "employment"
	DocRealEstate  DocumentType = "real_estate"
	DocLoan        DocumentType = "loan"
	DocPurchase    DocumentType = "purchase"
	DocPartnership DocumentType = "partnership"
	DocService     DocumentType = "service"
	DocGeneral     DocumentType = "general"
)

// docTypePriority resolves the document type by fixed priority: the first
// detected topic in this order wins. Multi-domain documents can be
// misclassified by design; the order is kept stable for compatibility.
var docTypePriority = []struct {
	docType DocumentType
	topic   Topic
}{
	{DocEmployment, TopicEmployment},
	{DocRealEstate, TopicRealEstate},
	{DocLoan, TopicLoan},
	{DocPurchase, TopicPurchase},
	{DocPartnership, TopicPartnership},
	{DocService, TopicService},
}

// DetectDocumentType resolves the document type from detected topics
func DetectDocumentType(topics map[Topic]bool) DocumentType {
	for _, entry := range docTypePriority {
		if topics[entry.topic] {
			return entry.docType
		}
	}
	return DocGeneral
}
