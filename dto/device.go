package dto

// RegisterDeviceRequest is the anonymous sign-in: the client sends its
// installation id and gets back a stable user identity plus tokens.
type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required,min=8,max=128"`
}

func (r RegisterDeviceRequest) Validate() error {
	return GetValidator().Struct(r)
}

type RegisterDeviceResponse struct {
	UserID  string     `json:"user_id" example:"0190a7b2-33cc-7d30-b1f2-9c1de0a3f001"`
	IsNew   bool       `json:"is_new"`
	Tokens  *TokenPair `json:"tokens"`
	BaseURL string     `json:"base_url,omitempty"`
}
