package constant

import "time"

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
	BcryptCost      = 12
)

const MaxFileSize = 10 * 1024 * 1024 // 10MB

const (
	MimePdf  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var AllowedFileTypes = []string{MimePdf, MimeDocx, MimeText}

func IsAllowedFileType(mimeType string) bool {
	for _, t := range AllowedFileTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// TierLimits are quota ceilings per subscription tier. -1 means unlimited.
// Usage is recorded against these but not enforced here.
type TierLimits struct {
	GenerationsPerMonth int
	MaxDocuments        int
	MaxProjects         int
}

var SubscriptionTiers = map[string]TierLimits{
	"free":    {GenerationsPerMonth: 5, MaxDocuments: 10, MaxProjects: 3},
	"basic":   {GenerationsPerMonth: 50, MaxDocuments: 100, MaxProjects: 20},
	"premium": {GenerationsPerMonth: -1, MaxDocuments: -1, MaxProjects: -1},
}

const (
	UsageActionGeneration = "generation"
	UsageActionExport     = "export"
)
