// file: internals/features/notifications/dto/notification_dto.go
package dto

type EmailRequest struct {
	To      string `json:"to"      validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Body    string `json:"body"    validate:"required"`
}

type KakaoRequest struct {
	Phone     string            `json:"phone"     validate:"required,max=30"`
	Template  string            `json:"template"  validate:"required,max=60"`
	Variables map[string]string `json:"variables"`
}
