// Command seeduser creates the first administrator account directly in the
// database, for bootstrapping a fresh installation.
package main

import (
	"context"
	"flag"
	"os"

	"tiendapos/internal/config"
	"tiendapos/internal/infra"
	"tiendapos/internal/model"
	"tiendapos/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	nombre := flag.String("nombre", "Administrador", "nombre del usuario")
	correo := flag.String("correo", "", "correo del usuario (requerido)")
	password := flag.String("password", "", "password del usuario (requerido)")
	rol := flag.String("rol", "administrador", "rol: vendedor | administrador")
	flag.Parse()

	if *correo == "" || *password == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuracion")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}

	ctx := context.Background()
	repo := repository.NewUsuarioRepository(db)

	if existente, err := repo.FindByCorreo(ctx, *correo); err == nil && existente != nil {
		log.Fatal().Str("correo", *correo).Msg("ya existe un usuario con ese correo")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo generar el hash")
	}

	u := model.Usuario{
		Nombre:       *nombre,
		Correo:       *correo,
		PasswordHash: string(hash),
		Rol:          *rol,
		Activo:       true,
	}
	if err := repo.Create(ctx, &u); err != nil {
		log.Fatal().Err(err).Msg("no se pudo crear el usuario")
	}
	log.Info().Str("id", u.ID.String()).Str("correo", u.Correo).Str("rol", u.Rol).Msg("usuario creado")
}
