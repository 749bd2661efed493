package itinerary

// AddPhotos добавляет загруженные файлы в конец списка фотографий.
// Если обложка ещё не назначена, ею становится первая фотография.
func (d *Draft) AddPhotos(filePaths []string) {
	for _, fp := range filePaths {
		d.Photos = append(d.Photos, Photo{
			FilePath:  fp,
			SortOrder: len(d.Photos),
		})
	}
	d.ensureCover()
}

// SetCoverPhoto делает фотографию по индексу единственной обложкой
func (d *Draft) SetCoverPhoto(index int) {
	if index < 0 || index >= len(d.Photos) {
		return
	}
	for i := range d.Photos {
		d.Photos[i].IsCover = i == index
	}
}

// MovePhoto меняет фотографию местами с соседней (direction: -1 влево, +1 вправо)
func (d *Draft) MovePhoto(index, direction int) {
	target := index + direction
	if index < 0 || index >= len(d.Photos) || target < 0 || target >= len(d.Photos) {
		return
	}
	d.Photos[index], d.Photos[target] = d.Photos[target], d.Photos[index]
	d.reindexPhotos()
}

// RemovePhoto удаляет фотографию по индексу. Если удалена обложка,
// обложкой становится первая из оставшихся фотографий.
func (d *Draft) RemovePhoto(index int) {
	if index < 0 || index >= len(d.Photos) {
		return
	}
	d.Photos = append(d.Photos[:index], d.Photos[index+1:]...)
	d.reindexPhotos()
	d.ensureCover()
}

// ensureCover поддерживает инвариант обложки: в непустом списке
// ровно одна фотография помечена обложкой
func (d *Draft) ensureCover() {
	if len(d.Photos) == 0 {
		return
	}
	for _, p := range d.Photos {
		if p.IsCover {
			return
		}
	}
	d.Photos[0].IsCover = true
}

func (d *Draft) reindexPhotos() {
	for i := range d.Photos {
		d.Photos[i].SortOrder = i
	}
}
