package dto

// RuleRequest - запрос создания или изменения правила доступа
type RuleRequest struct {
	AssociatedRole *string `json:"associated_role" validate:"omitempty,oneof=manager admin superuser"`
	Code           string  `json:"code" validate:"required,min=3,max=100"`
	Title          string  `json:"title" validate:"required,min=3,max=200"`
	Description    string  `json:"description"`
	ErrorMessage   *string `json:"error_message"`
}

// TariffRequest - запрос создания или изменения тарифа
type TariffRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description string  `json:"description"`
	Multiplier  float64 `json:"multiplier" validate:"required,gt=0"`
}
