package upstream

// SignupRow is one day of the signup count series
type SignupRow struct {
	SignupDate  string `json:"signupDate"`
	SignupCount int64  `json:"signupCount"`
}

// StayTimeRow is one bucket of the writing stay-time histogram
type StayTimeRow struct {
	Label string `json:"answerTimeRangeLabel"`
	Count int64  `json:"count"`
}

// CompletionRate is the retrospect completion statistic, a 0..1 fraction
type CompletionRate struct {
	CompletionRate float64 `json:"completionRate"`
}

// MeaningfulResult is the filtered retention cohort returned by the meaningful endpoint
type MeaningfulResult struct {
	MeaningfulMemberCount int64 `json:"meaningfulMemberCount"`
	TotalMemberCount      int64 `json:"totalMemberCount"`
}

// TemplateCountRow is one template with its selection or usage tally
type TemplateCountRow struct {
	TemplateName string `json:"templateName"`
	Count        int64  `json:"count"`
}

// SpaceMemberRow is one member's space composition counts
// TeamCount is how many of TotalCount are team spaces
type SpaceMemberRow struct {
	MemberID   int64 `json:"memberId"`
	TotalCount int64 `json:"totalCount"`
	TeamCount  int64 `json:"teamCount"`
}

// ChoiceType selects which template pick flow a choice-count query covers
type ChoiceType string

// Choice type values accepted by the choice-count endpoint
const (
	ChoiceRecommend ChoiceType = "RECOMMEND"
	ChoiceList      ChoiceType = "LIST"
)
