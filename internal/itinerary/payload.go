package itinerary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/excursion-service/internal/domain"
)

// SavePayload - полезная нагрузка сохранения маршрута.
// Представление черновика, пригодное для записи целиком:
// индексы точек и фотографий приведены к позиции в массиве,
// необязательные цены - числа или null.
type SavePayload struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	DurationHours   float64        `json:"duration_hours"`
	PriceAdult      float64        `json:"price_adult"`
	PriceChild      *float64       `json:"price_child"`
	PriceGroup      *float64       `json:"price_group"`
	MaxParticipants int            `json:"max_participants"`
	IsPublished     bool           `json:"is_published"`
	Points          []PointPayload `json:"points"`
	Photos          []PhotoPayload `json:"photos"`
}

// PointPayload - точка маршрута в полезной нагрузке сохранения
type PointPayload struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	PointType    domain.PointType `json:"point_type"`
	Lat          float64          `json:"lat"`
	Lng          float64          `json:"lng"`
	VisitMinutes int              `json:"visit_minutes"`
	OrderIndex   int              `json:"order_index"`
}

// PhotoPayload - фотография в полезной нагрузке сохранения
type PhotoPayload struct {
	FilePath  string `json:"file_path"`
	SortOrder int    `json:"sort_order"`
	IsCover   bool   `json:"is_cover"`
}

// BuildSavePayload собирает полезную нагрузку сохранения из черновика.
// Независимо от накопившихся в черновике значений order_index
// (перетаскивание их не перенумеровывает) индексы точек и фотографий
// принудительно выставляются по позиции в массиве: позиция в массиве -
// единственный источник порядка. Пустые строки необязательных цен
// превращаются в null, publish задаёт флаг публикации.
func BuildSavePayload(d *Draft, publish bool) (*SavePayload, error) {
	priceChild, err := parseOptionalPrice(d.PriceChild)
	if err != nil {
		return nil, fmt.Errorf("цена детского билета: %w", err)
	}
	priceGroup, err := parseOptionalPrice(d.PriceGroup)
	if err != nil {
		return nil, fmt.Errorf("цена группового билета: %w", err)
	}

	p := &SavePayload{
		Title:           d.Title,
		Description:     d.Description,
		DurationHours:   d.DurationHours,
		PriceAdult:      d.PriceAdult,
		PriceChild:      priceChild,
		PriceGroup:      priceGroup,
		MaxParticipants: d.MaxParticipants,
		IsPublished:     publish,
		Points:          make([]PointPayload, 0, len(d.Waypoints)),
		Photos:          make([]PhotoPayload, 0, len(d.Photos)),
	}

	for i, w := range d.Waypoints {
		p.Points = append(p.Points, PointPayload{
			Title:        w.Title,
			Description:  w.Description,
			PointType:    w.PointType,
			Lat:          w.Lat,
			Lng:          w.Lng,
			VisitMinutes: w.VisitMinutes,
			OrderIndex:   i,
		})
	}

	coverSeen := false
	for i, ph := range d.Photos {
		isCover := ph.IsCover && !coverSeen
		if isCover {
			coverSeen = true
		}
		p.Photos = append(p.Photos, PhotoPayload{
			FilePath:  ph.FilePath,
			SortOrder: i,
			IsCover:   isCover,
		})
	}
	if len(p.Photos) > 0 && !coverSeen {
		p.Photos[0].IsCover = true
	}

	return p, nil
}

func parseOptionalPrice(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("не число: %q", raw)
	}
	return &v, nil
}
