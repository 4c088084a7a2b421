package calculations

// MonthlyProjection строит помесячный ряд баланса и суммы вложений для графиков.
//
// Ряд пересчитывается заново из Input, а не интерполируется из годовой разбивки.
// Для ежедневной капитализации месяц считается как 30 дневных шагов, для ежегодной
// проценты начисляются только на границе каждых 12 месяцев. Поэтому для Daily и
// Annually итог не совпадает с Calculate бит в бит; совпадает только форма кривой.
// Для Monthly итоговый баланс совпадает с Calculate.
func MonthlyProjection(in Input) ([]ProjectionPoint, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	r := in.RateDecimal()
	monthly := in.MonthlyContribution
	if monthly <= 0 {
		monthly = in.AnnualContribution / 12
	}

	totalMonths := in.TotalMonths()
	points := make([]ProjectionPoint, 0, totalMonths+1)

	balance := in.Principal
	invested := in.Principal
	points = append(points, ProjectionPoint{Month: 0, Balance: balance, Contributions: invested})

	for month := 1; month <= totalMonths; month++ {
		switch in.CompoundingFrequency {
		case Monthly:
			balance += balance * (r / 12)
			balance += monthly
			invested += monthly
		case Daily:
			for day := 0; day < 30; day++ {
				balance += balance * (r / 365)
				balance += monthly / 30
				invested += monthly / 30
			}
		default:
			if month%12 == 0 {
				balance += balance * r
			}
			balance += monthly
			invested += monthly
		}

		points = append(points, ProjectionPoint{
			Month:         month,
			Years:         float64(month) / 12.0,
			Balance:       balance,
			Contributions: invested,
		})
	}

	return points, nil
}
