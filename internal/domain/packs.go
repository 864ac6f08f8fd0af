package domain

type Pack string

const (
	PackA Pack = "packA"
	PackB Pack = "packB"
)

// PackTerms is what a pack costs on a rail and what it grants once paid.
type PackTerms struct {
	Price      int64
	TargetRole Role
	Bonus      int64
	Label      string
}

var packs = map[Pack]PackTerms{
	PackA: {Price: 5000, TargetRole: RoleMember, Bonus: 5000, Label: "Pack Membre"},
	PackB: {Price: 10000, TargetRole: RolePremium, Bonus: 15000, Label: "Pack Premium"},
}

// Terms returns the fixed terms of the pack.
func (p Pack) Terms() (PackTerms, bool) {
	t, ok := packs[p]
	return t, ok
}

func (p Pack) Valid() bool {
	_, ok := packs[p]
	return ok
}
