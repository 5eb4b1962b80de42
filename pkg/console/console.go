package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/produce-finops-dashboard-go/internal/shared/types"
)

// barWidth é a largura máxima, em caracteres, da maior barra.
const barWidth = 40

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores por tier, usadas nas células das tabelas.
var (
	TierLowColor      = color.New(color.FgGreen, color.Bold).SprintFunc()
	TierBudgetColor   = color.New(color.FgCyan, color.Bold).SprintFunc()
	TierModerateColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	TierHighColor     = color.New(color.FgRed, color.Bold).SprintFunc()
	Highlight         = color.New(color.FgMagenta, color.Bold).SprintFunc()
)

// ColorTier pinta um rótulo de tier ("Low Budget", "Budget", ...).
func ColorTier(label string) string {
	switch label {
	case "Low Budget":
		return TierLowColor(label)
	case "Budget":
		return TierBudgetColor(label)
	case "Moderate":
		return TierModerateColor(label)
	case "High Budget":
		return TierHighColor(label)
	default:
		return label
	}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// Progress cria uma barra de progresso para os itens especificados.
func (c *Console) Progress(items []string) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.WithTotal(len(items)).Start()
	return &progressHandle{bar: bar}
}

func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Loading price dataset").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false). // Manter a barra após concluir
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayBars exibe barras horizontais proporcionais ao maior valor, dentro de um painel.
func (c *Console) DisplayBars(title string, bars []types.BarValue) {
	if len(bars) == 0 {
		pterm.Warning.Println("Nothing to plot: the selection is empty")
		return
	}

	maxValue := 0.0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}
	if maxValue <= 0 {
		pterm.Warning.Println("All values are zero for this selection")
		return
	}

	tableData := pterm.TableData{{"Range", "Value", "", ""}}
	for _, b := range bars {
		bar := strings.Repeat("█", barLength(b.Value, maxValue))
		tableData = append(tableData, []string{
			b.Label,
			fmt.Sprintf("%.3f", b.Value),
			pterm.FgCyan.Sprint(bar),
			b.Note,
		})
	}

	renderedTable, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// DisplayPanel exibe linhas de texto dentro de uma caixa com título.
func (c *Console) DisplayPanel(title string, lines []string) {
	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgLightCyan)).
		Sprint(strings.Join(lines, "\n"))
	fmt.Println("\n" + panel)
}

// barLength escala value para [0, barWidth]; valores positivos ganham ao menos um bloco.
func barLength(value, maxValue float64) int {
	if value <= 0 || maxValue <= 0 {
		return 0
	}
	n := int(value / maxValue * barWidth)
	if n == 0 {
		return 1
	}
	if n > barWidth {
		return barWidth
	}
	return n
}
