package seed

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gosimple/slug"
)

// EmailDomain is the canonical domain all synthesized emails use.
const EmailDomain = "gmail.com"

// DefaultMaxAttempts bounds unique identity synthesis retries.
const DefaultMaxAttempts = 100

// Name pools for realistic Vietnamese identities.
var (
	firstNames = []string{
		"Anh", "Bình", "Châu", "Dũng", "Hà", "Hương", "Khánh", "Lan", "Minh",
		"Nam", "Ngọc", "Phúc", "Quân", "Thảo", "Trang", "Tuấn", "Vân", "Vi",
	}
	lastNames = []string{
		"Nguyễn", "Trần", "Lê", "Phạm", "Hoàng", "Huỳnh", "Phan", "Vũ",
		"Đặng", "Bùi", "Đỗ", "Hồ", "Ngô",
	}
)

// Person is a synthesized human-plausible identity.
type Person struct {
	FullName string
	Email    string
}

// Slugify lowercases s, strips diacritics and collapses everything
// outside [a-z0-9].
func Slugify(s string) string {
	return slug.Make(s)
}

// NewPerson draws a name pair and derives the email as
// {slug(first)}.{slug(last)}@gmail.com. Collision avoidance is the
// caller's job; see UniquePerson.
func NewPerson(rng *rand.Rand) Person {
	first := PickOne(rng, firstNames)
	last := PickOne(rng, lastNames)
	return Person{
		FullName: last + " " + first,
		Email:    Slugify(first) + "." + Slugify(last) + "@" + EmailDomain,
	}
}

// UniquePerson resamples until the lower-cased email is absent from
// excluded, failing with ErrGenerationExhausted after maxAttempts
// draws. The name space is small, so a full exclusion set must surface
// a diagnosable error instead of looping forever.
func UniquePerson(rng *rand.Rand, excluded map[string]struct{}, maxAttempts int) (Person, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for i := 0; i < maxAttempts; i++ {
		p := NewPerson(rng)
		if _, used := excluded[strings.ToLower(p.Email)]; !used {
			return p, nil
		}
	}
	return Person{}, fmt.Errorf("%w after %d attempts", ErrGenerationExhausted, maxAttempts)
}
