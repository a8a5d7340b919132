package timeline

// DefaultThumbnailCells gives five minutes per cell.
const DefaultThumbnailCells = 288

// clampCells keeps a cell count within 1..MinutesPerDay.
func clampCells(cells int) int {
	switch {
	case cells <= 0:
		return DefaultThumbnailCells
	case cells > MinutesPerDay:
		return MinutesPerDay
	}
	return cells
}

// bucket maps a minute onto one of cells equal-width buckets.
func bucket(minute, cells int) int { return minute * cells / MinutesPerDay }

// Thumbnail collapses the day into cells buckets. A bucket is set when any
// minute inside it fires, so a single execution stays visible at any
// scale. Non-positive cells selects DefaultThumbnailCells.
func Thumbnail(day *Day, cells int) []bool {
	cells = clampCells(cells)
	out := make([]bool, cells)
	for m := range day.slots {
		if day.slots[m] != nil {
			out[bucket(m, cells)] = true
		}
	}
	return out
}

// ThumbnailJobs is Thumbnail with attribution: each bucket lists the jobs
// firing anywhere inside it, ascending.
func ThumbnailJobs(day *Day, cells int) [][]int {
	cells = clampCells(cells)
	out := make([][]int, cells)
	for m, jobs := range day.slots {
		b := bucket(m, cells)
		for _, j := range jobs {
			out[b] = insertSorted(out[b], j)
		}
	}
	return out
}

func insertSorted(list []int, v int) []int {
	i := 0
	for i < len(list) && list[i] < v {
		i++
	}
	if i < len(list) && list[i] == v {
		return list
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = v
	return list
}
