package request

type PartnerVoucherRequest struct {
	Value    string `json:"value" binding:"required"`
	Provider string `json:"provider" binding:"required"`
}
