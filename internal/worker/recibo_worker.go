package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"tiendapos/internal/infra"
	"tiendapos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReciboPayload identifies the sale and destination for one receipt email.
type ReciboPayload struct {
	VentaID string `json:"venta_id"`
	Correo  string `json:"correo"`
}

// ReciboWorker generates the PDF receipt and emails it to the customer.
type ReciboWorker struct {
	ventaRepo   repository.VentaRepository
	configRepo  repository.ConfiguracionRepository
	mailer      *infra.Mailer
	storagePath string
}

func NewReciboWorker(
	ventaRepo repository.VentaRepository,
	configRepo repository.ConfiguracionRepository,
	mailer *infra.Mailer,
	storagePath string,
) *ReciboWorker {
	return &ReciboWorker{
		ventaRepo:   ventaRepo,
		configRepo:  configRepo,
		mailer:      mailer,
		storagePath: storagePath,
	}
}

func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReciboPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("recibo: payload ilegible: %w", err)
	}
	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		return fmt.Errorf("recibo: venta_id invalido: %w", err)
	}

	venta, err := w.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		return fmt.Errorf("recibo: venta no encontrada: %w", err)
	}

	nombreTienda := ""
	if cfg, cerr := w.configRepo.Obtener(ctx); cerr == nil && cfg.NombreTienda != nil {
		nombreTienda = *cfg.NombreTienda
	}

	pdfPath, err := infra.GenerateReciboPDF(venta, nombreTienda, w.storagePath)
	if err != nil {
		return fmt.Errorf("recibo: generar pdf: %w", err)
	}

	subject := fmt.Sprintf("Recibo de compra %s", venta.ID)
	body := fmt.Sprintf("Gracias por su compra. Adjuntamos el recibo de la venta %s por un total de $%s.",
		venta.ID, venta.Total.StringFixed(2))
	if err := w.mailer.SendRecibo(payload.Correo, subject, body, pdfPath); err != nil {
		return fmt.Errorf("recibo: enviar correo: %w", err)
	}

	log.Info().Str("venta_id", payload.VentaID).Str("correo", payload.Correo).Msg("recibo enviado")
	return nil
}
