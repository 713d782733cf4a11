package voucher

// StandardDenominations in cents.
var StandardDenominations = []int64{
	200, 500, 1000, 1200, 1500, 2000, 2500, 2900, 3000, 5000,
	5500, 6000, 10000, 11000, 15000, 18000, 20000, 25000, 30000, 50000,
}

type AmountStatusCount struct {
	AmountCents int64
	Status      Status
	Count       int64
}

type Availability struct {
	AmountCents int64
	Total       int64
	Available   int64
	Disabled    bool
}

// Aggregate builds one entry per denomination, in denomination order.
// Denominations missing from counts come out as zero and disabled.
func Aggregate(denominations []int64, counts []AmountStatusCount) []Availability {
	type tally struct{ total, active int64 }
	byAmount := make(map[int64]*tally, len(counts))
	for _, c := range counts {
		t, ok := byAmount[c.AmountCents]
		if !ok {
			t = &tally{}
			byAmount[c.AmountCents] = t
		}
		t.total += c.Count
		if c.Status == StatusActive {
			t.active += c.Count
		}
	}

	result := make([]Availability, len(denominations))
	for i, amount := range denominations {
		a := Availability{AmountCents: amount}
		if t, ok := byAmount[amount]; ok {
			a.Total = t.total
			a.Available = t.active
		}
		a.Disabled = a.Available == 0
		result[i] = a
	}
	return result
}

func EmptyAvailability(denominations []int64) []Availability {
	return Aggregate(denominations, nil)
}
