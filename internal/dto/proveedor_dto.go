package dto

type CrearProveedorRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=2"`
	NIT       string  `json:"nit"    validate:"required,min=3"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

type ActualizarProveedorRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=2"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

type ProveedorResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	NIT       string  `json:"nit"`
	Telefono  *string `json:"telefono"`
	Correo    *string `json:"correo"`
	Direccion *string `json:"direccion"`
	Activo    bool    `json:"activo"`
}
