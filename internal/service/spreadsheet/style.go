package spreadsheet

import "github.com/xuri/excelize/v2"

const (
	headerFillColor  = "4F81BD"
	weekendFillColor = "DCE6F1"
	headerFontColor  = "FFFFFF"

	columnWidth = 20
	rowHeight   = 25
)

// styles 紀錄這份活頁簿註冊過的 style id
type styles struct {
	title        int
	header       int
	day          int
	weekendDay   int
	shift        int
	weekendShift int
	blank        int
	weekendBlank int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

var (
	centered = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	leftMid  = &excelize.Alignment{Horizontal: "left", Vertical: "center"}
)

func registerStyles(f *excelize.File) (styles, error) {
	weekend := solidFill(weekendFillColor)
	var s styles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}, Alignment: centered}},
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: headerFontColor},
			Fill:      solidFill(headerFillColor),
			Border:    thinBorder(),
			Alignment: centered,
		}},
		{&s.day, &excelize.Style{Border: thinBorder(), Alignment: leftMid}},
		{&s.weekendDay, &excelize.Style{Border: thinBorder(), Alignment: leftMid, Fill: weekend}},
		{&s.shift, &excelize.Style{Border: thinBorder(), Alignment: centered}},
		{&s.weekendShift, &excelize.Style{Border: thinBorder(), Alignment: centered, Fill: weekend}},
		{&s.blank, &excelize.Style{Border: thinBorder()}},
		{&s.weekendBlank, &excelize.Style{Border: thinBorder(), Fill: weekend}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return styles{}, err
		}
		*d.dst = id
	}
	return s, nil
}
