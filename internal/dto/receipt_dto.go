package dto

// DeleteReceiptsRequest carries the receipt ids to remove. An empty list is a
// valid no-op request.
type DeleteReceiptsRequest struct {
	ReceiptIDs []string `json:"receiptIDs" binding:"omitempty,dive,required"`
}
