package reduction

// Reduction is a promotional code. Status is derived at read time and is
// never taken from stored data.
type Reduction struct {
	ID          int    `json:"id" yaml:"id" toml:"id"`
	Code        string `json:"code" yaml:"code" toml:"code"`
	Pourcentage int    `json:"pourcentage" yaml:"pourcentage" toml:"pourcentage"`
	Utiliser    int    `json:"utiliser" yaml:"utiliser" toml:"utiliser"`
	MaxUsage    *int   `json:"maxUsage" yaml:"maxUsage" toml:"maxUsage"`
	Start       Date   `json:"start" yaml:"start" toml:"start"`
	End         Date   `json:"end" yaml:"end" toml:"end"`
	Status      Status `json:"status" yaml:"-" toml:"-"`
	IsActive    bool   `json:"isActive" yaml:"isActive" toml:"isActive"`
}

// RemainingUses is nil when the code has no usage cap.
func (r Reduction) RemainingUses() *int {
	if r.MaxUsage == nil {
		return nil
	}
	left := max(*r.MaxUsage-r.Utiliser, 0)
	return &left
}
