package dto

// Status values carried by every JSON envelope
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StatusResponse is the minimal envelope shared by most endpoints
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Success builds a success envelope
func Success(message string) StatusResponse {
	return StatusResponse{Status: StatusSuccess, Message: message}
}

// Error builds an error envelope
func Error(message string) StatusResponse {
	return StatusResponse{Status: StatusError, Message: message}
}

// LoginResponse is returned on successful authentication.
// The password hash never appears here.
type LoginResponse struct {
	Status       string  `json:"status"`
	UserID       uint64  `json:"user_id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profile_image"`
}

// UploadImageResponse is returned on successful profile image upload
type UploadImageResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
}

// DashboardResponse carries the balance summary. Field names match the wire
// contract of the existing clients: saldo = balance, pemasukan = income,
// pengeluaran = expense. Deliberately no status wrapper.
type DashboardResponse struct {
	Saldo       float64 `json:"saldo"`
	Pemasukan   float64 `json:"pemasukan"`
	Pengeluaran float64 `json:"pengeluaran"`
}

// HealthResponse reports service and database health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
