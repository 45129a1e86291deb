package services

import "fmt"

// BirthrightYear is one row of the pod-spread projection table: pods double
// each year, each pod covering a nominal 4 m².
type BirthrightYear struct {
	Year int    `json:"year"`
	Pods int    `json:"pods"`
	Area string `json:"area"`
}

const maxProjectedPods = 99999

// BirthrightProjection projects pod spread over the given number of years,
// starting from year zero.
func BirthrightProjection(podCount int, years int) []BirthrightYear {
	if podCount < 0 {
		podCount = 0
	}
	rows := make([]BirthrightYear, 0, years+1)
	pods := podCount
	for year := 0; year <= years; year++ {
		if pods > maxProjectedPods {
			pods = maxProjectedPods
		}
		rows = append(rows, BirthrightYear{
			Year: year,
			Pods: pods,
			Area: formatArea(pods * 4),
		})
		pods *= 2
	}
	return rows
}

func formatArea(squareMeters int) string {
	if squareMeters >= 10000 {
		return fmt.Sprintf("%.1f ha", float64(squareMeters)/10000)
	}
	return fmt.Sprintf("%d m²", squareMeters)
}
