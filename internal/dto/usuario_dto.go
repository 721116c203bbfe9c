package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	Correo   string `json:"correo"   validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int             `json:"expires_in"`
	Usuario   UsuarioResponse `json:"usuario"`
}

// ─── Usuario CRUD ────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2"`
	Correo   string `json:"correo"   validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol"      validate:"required,oneof=vendedor administrador"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Rol      string `json:"rol"      validate:"omitempty,oneof=vendedor administrador"`
}

type UsuarioResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Rol    string `json:"rol"`
	Activo bool   `json:"activo"`
}
