package response

import "github.com/romainbeka/dashboardsteph/internal/domain/jdr"

const CreatedMessage = "Ajouté avec succès"

type CreateJDRResponse struct {
	Message  string  `json:"message"`
	NewEntry jdr.JDR `json:"newEntry"`
}

type DeleteJDRResponse struct {
	Success bool `json:"success"`
}

func FromCreatedJDR(record *jdr.JDR) CreateJDRResponse {
	return CreateJDRResponse{Message: CreatedMessage, NewEntry: *record}
}

// JDRList never serializes as null.
func JDRList(records []jdr.JDR) []jdr.JDR {
	if records == nil {
		return []jdr.JDR{}
	}
	return records
}
