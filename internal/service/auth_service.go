package service

import (
	"context"
	"errors"
	"time"

	"tiendapos/internal/dto"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// ErrCredencialesInvalidas covers both unknown email and wrong password so
// the response never reveals which one failed.
var ErrCredencialesInvalidas = errors.New("credenciales invalidas")

type AuthService struct {
	repo            repository.UsuarioRepository
	jwtSecret       []byte
	expirationHours int
}

func NewAuthService(repo repository.UsuarioRepository, jwtSecret string, expirationHours int) *AuthService {
	if expirationHours <= 0 {
		expirationHours = 8
	}
	return &AuthService{
		repo:            repo,
		jwtSecret:       []byte(jwtSecret),
		expirationHours: expirationHours,
	}
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.repo.FindByCorreo(ctx, req.Correo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}
	if !usuario.Activo {
		return nil, ErrCredencialesInvalidas
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrCredencialesInvalidas
	}

	expiresIn := s.expirationHours * 3600
	claims := jwt.MapClaims{
		"user_id": usuario.ID.String(),
		"correo":  usuario.Correo,
		"rol":     usuario.Rol,
		"exp":     time.Now().Add(time.Duration(s.expirationHours) * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		Usuario:   toUsuarioResponse(usuario),
	}, nil
}

func (s *AuthService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if existente, err := s.repo.FindByCorreo(ctx, req.Correo); err == nil && existente != nil {
		return nil, &SolicitudInvalidaError{Motivo: "ya existe un usuario con ese correo"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	u := model.Usuario{
		Nombre:       req.Nombre,
		Correo:       req.Correo,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(&u)
	return &resp, nil
}

func (s *AuthService) ObtenerUsuario(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "usuario", ID: id.String()}
		}
		return nil, err
	}
	resp := toUsuarioResponse(u)
	return &resp, nil
}

func (s *AuthService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, toUsuarioResponse(&usuarios[i]))
	}
	return out, nil
}

func (s *AuthService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entidad: "usuario", ID: id.String()}
		}
		return nil, err
	}

	if req.Nombre != "" {
		u.Nombre = req.Nombre
	}
	if req.Rol != "" {
		u.Rol = req.Rol
	}
	if req.Password != "" {
		hash, herr := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if herr != nil {
			return nil, herr
		}
		u.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(u)
	return &resp, nil
}

func (s *AuthService) DesactivarUsuario(ctx context.Context, id uuid.UUID) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "usuario", ID: id.String()}
		}
		return err
	}
	if !u.Activo {
		return &NotFoundError{Entidad: "usuario", ID: id.String()}
	}
	return s.repo.Desactivar(ctx, id)
}

func (s *AuthService) ReactivarUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entidad: "usuario", ID: id.String()}
		}
		return err
	}
	return s.repo.Reactivar(ctx, id)
}

func toUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:     u.ID.String(),
		Nombre: u.Nombre,
		Correo: u.Correo,
		Rol:    u.Rol,
		Activo: u.Activo,
	}
}
