package game

// HouseEdge - фиксированная вероятность применить смещение исхода в пользу
// казино в конкретной точке решения. Значение задаётся на игру и не меняется
// за время жизни движка.
type HouseEdge float64

// Triggered сообщает, срабатывает ли смещение в этой точке решения
func (e HouseEdge) Triggered() bool {
	return secureRandFloat() < float64(e)
}

// PickIndex выбирает индекс исхода из n возможных: с вероятностью edge -
// равномерно из подмножества favored (выгодного казино), иначе равномерно
// из всех n. Пустое подмножество всегда откатывается к равномерному выбору,
// поэтому ни один исход не становится невозможным.
func (e HouseEdge) PickIndex(n int, favored []int) int {
	if n <= 0 {
		return -1
	}
	if len(favored) > 0 && e.Triggered() {
		return favored[secureRandInt(int64(len(favored)))]
	}
	return int(secureRandInt(int64(n)))
}

// pickFrom выбирает равномерный элемент из непустого набора индексов
func pickFrom(idx []int) int {
	return idx[secureRandInt(int64(len(idx)))]
}
