package fsworkspace

import "embed"

//go:embed templates/datasplit.yaml
var templatesFS embed.FS

const configTemplate = "templates/datasplit.yaml"
