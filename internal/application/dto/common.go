package dto

// Response sobre estándar de todas las respuestas de la API.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK envuelve datos en una respuesta exitosa.
func OK(data interface{}) Response {
	return Response{Status: "success", Data: data}
}

// OKMessage respuesta exitosa con mensaje y sin datos.
func OKMessage(message string) Response {
	return Response{Status: "success", Message: message}
}

// PageRequest paginación para listados: páginas indexadas desde cero.
type PageRequest struct {
	Page int `query:"page" validate:"min=0"`
	Size int `query:"size" validate:"min=1,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Size vienen vacíos.
func (p *PageRequest) DefaultPage() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = 12
	}
	if p.Size > 100 {
		p.Size = 100
	}
}

// Offset desplazamiento SQL equivalente a la página solicitada.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page página de resultados con metadatos de paginación.
type Page struct {
	Content       interface{} `json:"content"`
	TotalElements int64       `json:"totalElements"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
}

// NewPage arma una página a partir del contenido y la solicitud original.
func NewPage(content interface{}, total int64, req PageRequest) Page {
	return Page{Content: content, TotalElements: total, Page: req.Page, Size: req.Size}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
