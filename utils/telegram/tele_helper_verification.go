package telegram

import (
	"fmt"

	"c2p-system/domain/entities"
	gwerrors "c2p-system/errors"
	"c2p-system/utils/helpers"

	"github.com/leekchan/accounting"
)

var bolivar = accounting.Accounting{Symbol: "Bs. ", Precision: 2, Thousand: ".", Decimal: ","}

func SendVerificationInfo(verification entities.VerificationEntity) string {
	return fmt.Sprintf(`
Verificación C2P: %v
Referencia: %v
Estado: %v
Monto: %v
Teléfono: %v
Código banco: %v
Hora: %v
				`,
		verification.VerificationID,
		verification.Reference,
		verification.Status,
		bolivar.FormatMoney(verification.Amount),
		verification.Phone,
		verification.GatewayCode,
		verification.CreatedAt.In(helpers.LocationVenezuela()).Format("02-01-2006 15:04:05"),
	)
}

func SendGatewayIncident(verification entities.VerificationEntity, gwErr *gwerrors.GatewayError) string {
	return fmt.Sprintf(`
Incidente gateway Mercantil
Verificación: %v
Referencia: %v
Código: %v
Severidad: %v
Detalle: %v
Monto: %v
Hora: %v
				`,
		verification.VerificationID,
		verification.Reference,
		gwErr.Code,
		gwErr.Severity,
		gwErr.Message,
		bolivar.FormatMoney(verification.Amount),
		helpers.GetCurrentTime().Format("02-01-2006 15:04:05"),
	)
}
