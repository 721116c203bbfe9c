package service

import (
	"context"
	"testing"

	"tiendapos/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba"

func newAuthFixture(t *testing.T) (*AuthService, *usuarioRepoStub) {
	t.Helper()
	usuarios := newUsuarioRepoStub()
	svc := NewAuthService(usuarios, testSecret, 8)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre:   "Maria Lopez",
		Correo:   "maria@tienda.local",
		Password: "clave-segura-123",
		Rol:      "administrador",
	})
	require.NoError(t, err)
	return svc, usuarios
}

func TestLoginExitoso(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:   "maria@tienda.local",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "administrador", resp.Usuario.Rol)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "maria@tienda.local", claims["correo"])
	assert.Equal(t, "administrador", claims["rol"])
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:   "maria@tienda.local",
		Password: "otra-clave",
	})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLoginCorreoDesconocido(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Correo:   "nadie@tienda.local",
		Password: "clave-segura-123",
	})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLoginUsuarioInactivo(t *testing.T) {
	svc, usuarios := newAuthFixture(t)

	u, err := usuarios.FindByCorreo(context.Background(), "maria@tienda.local")
	require.NoError(t, err)
	require.NoError(t, usuarios.Desactivar(context.Background(), u.ID))

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Correo:   "maria@tienda.local",
		Password: "clave-segura-123",
	})
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestCrearUsuarioCorreoDuplicado(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre:   "Otra Maria",
		Correo:   "maria@tienda.local",
		Password: "clave-segura-456",
		Rol:      "vendedor",
	})
	var invalida *SolicitudInvalidaError
	assert.ErrorAs(t, err, &invalida)
}
