package response

import "github.com/romainbeka/dashboardsteph/internal/usecase/queries"

func ReductionList(views []queries.ReductionView) []queries.ReductionView {
	if views == nil {
		return []queries.ReductionView{}
	}
	return views
}
