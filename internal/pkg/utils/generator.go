package utils

import (
	"fmt"
	"labdash-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateDraftID() string {
	return uuid.NewString()
}

func GenerateEventID() string {
	return uuid.NewString()
}

// GenerateReportObjectName names the transient PDF object for an order.
// The timestamp keeps repeated downloads of the same order from colliding.
func GenerateReportObjectName(orderID string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s", timestamp, fmt.Sprintf(constvars.ReportFileNameFormat, orderID))
}
