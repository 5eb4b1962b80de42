package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/produce-finops-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ____                _                  _____ _       ___
        |  _ \ _ __ ___   __| |_   _  ___ ___  |  ___(_)_ __ / _ \ _ __  ___
        | |_) | '__/ _ \ / _' | | | |/ __/ _ \ | |_  | | '_ \ | | | '_ \/ __|
        |  __/| | | (_) | (_| | |_| | (_|  __/ |  _| | | | | | |_| | |_) \__ \
        |_|   |_|  \___/ \__,_|\__,_|\___\___| |_|   |_|_| |_|\___/| .__/|___/
                                                                   |_|
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Produce FinOps Dashboard CLI (v%s)", formattedVersion)))
}
