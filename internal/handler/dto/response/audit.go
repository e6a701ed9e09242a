package response

import "github.com/romainbeka/dashboardsteph/internal/domain/jdr"

type RelationAuditResponse struct {
	Consistent bool          `json:"consistent"`
	Findings   []jdr.Finding `json:"findings"`
}

func FromFindings(findings []jdr.Finding) RelationAuditResponse {
	if findings == nil {
		findings = []jdr.Finding{}
	}
	return RelationAuditResponse{Consistent: len(findings) == 0, Findings: findings}
}
