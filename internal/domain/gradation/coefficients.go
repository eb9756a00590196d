package gradation

// Coefficients возвращает коэффициент неоднородности Cu = D60/D10 и
// коэффициент кривизны Cc = D30²/(D10·D60). Если знаменатель не
// определён, соответствующий коэффициент равен 0.
func Coefficients(d10, d30, d60 float64) (cu, cc float64) {
	if d10 > 0 {
		cu = d60 / d10
	}
	if d10 > 0 && d60 > 0 {
		cc = (d30 * d30) / (d10 * d60)
	}
	return cu, cc
}
