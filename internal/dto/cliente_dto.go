package dto

type CrearClienteRequest struct {
	Nombre        string  `json:"nombre"         validate:"required,min=2"`
	TipoDocumento string  `json:"tipo_documento" validate:"omitempty,max=20"`
	Documento     string  `json:"documento"      validate:"required,min=3"`
	Direccion     *string `json:"direccion"`
	Telefono      *string `json:"telefono"`
	Correo        *string `json:"correo"         validate:"omitempty,email"`
}

type ActualizarClienteRequest struct {
	Nombre        *string `json:"nombre"         validate:"omitempty,min=2"`
	TipoDocumento *string `json:"tipo_documento" validate:"omitempty,max=20"`
	Documento     *string `json:"documento"      validate:"omitempty,min=3"`
	Direccion     *string `json:"direccion"`
	Telefono      *string `json:"telefono"`
	Correo        *string `json:"correo"         validate:"omitempty,email"`
}

type ClienteResponse struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	TipoDocumento string  `json:"tipo_documento"`
	Documento     string  `json:"documento"`
	Direccion     *string `json:"direccion"`
	Telefono      *string `json:"telefono"`
	Correo        *string `json:"correo"`
	Activo        bool    `json:"activo"`
}
