package completion

// Flag describes one option offered for completion
type Flag struct {
	Long        string
	Short       rune // Short 0 when the option has no short form
	Description string
	TakesValue  bool   // TakesValue false for toggles
	Type        string // Type the value type name shown as a hint
}

// Data is the completion input for a program: its flags in declaration order
type Data struct {
	Flags []Flag
}

// Paths holds information about completion script locations
type Paths struct {
	Primary   string // Main completion path
	Fallback  string // Alternative path if primary isn't available
	Extension string // File extension for completion script (if any)
	Comment   string // Documentation about the path choice
}

// FileInfo holds shell-specific naming conventions
type FileInfo struct {
	Prefix    string // Some shells require specific prefixes
	Extension string // File extension if required
	Comment   string // Documentation about the naming convention
}
