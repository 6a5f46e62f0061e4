package response

import "do-coupon-system/internal/usecase/queries"

type MessageResponse struct {
	Message string `json:"message"`
}

type DeductPointsResponse struct {
	Message       string  `json:"message"`
	Point         float64 `json:"point"`
	DiscountPoint float64 `json:"discount_point"`
}

type HistoryResponse struct {
	Items []queries.HistoryItem `json:"items"`
}

func FromHistory(items []queries.HistoryItem) HistoryResponse {
	if items == nil {
		items = []queries.HistoryItem{}
	}
	return HistoryResponse{Items: items}
}
