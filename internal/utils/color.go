package utils

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightBlue = "\033[94m"
)

// ColorOutput controls whether colors are enabled
var ColorOutput = true

// SetColorOutput enables or disables color output
func SetColorOutput(enabled bool) {
	ColorOutput = enabled
}

// Colorize applies color to text if colors are enabled
func Colorize(color, text string) string {
	if !ColorOutput {
		return text
	}
	return color + text + Reset
}

// Info formats text with info color (cyan)
func Info(text string) string {
	return Colorize(Cyan, text)
}

// Success formats text with success color (green)
func Success(text string) string {
	return Colorize(Green, text)
}

// Warning formats text with warning color (yellow)
func Warning(text string) string {
	return Colorize(Yellow, text)
}

// Error formats text with error color (red)
func Error(text string) string {
	return Colorize(Red, text)
}

// Highlight formats text with highlight color (bright blue)
func Highlight(text string) string {
	return Colorize(BrightBlue, text)
}
