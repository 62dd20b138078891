// Package randompkg provides functionality for generating random application
// test data.
package randompkg

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/evermed/finvalid/internal/domain"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// RecordID generates a random transaction record id.
func RecordID() string {
	return uuid.NewString()
}

// ActorID generates a random staff member id.
func ActorID() string {
	return String(6)
}

// AmountBetween generates a random amount of money in minor units between min and max.
func AmountBetween(min, max int64) int64 {
	return min + Intn(int(max-min))
}

// Kind generates a random transaction record kind.
func Kind() domain.Kind {
	kinds := []domain.Kind{domain.KindIncome, domain.KindExpense, domain.KindFeePayout}
	return kinds[Intn(len(kinds))]
}

// Category generates a random record category.
func Category() string {
	categories := []string{"consultation", "laboratory", "pharmacy", "maintenance", "payroll"}
	return categories[Intn(len(categories))]
}
