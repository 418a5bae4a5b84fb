package response

type CaptchaResponse struct {
	CaptchaId string `json:"captchaId"`
	Question  string `json:"question"`
}
