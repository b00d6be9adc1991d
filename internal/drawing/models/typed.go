package models

// ============================================================
// Typed options per category
// ============================================================

type BedOptions struct {
	BedType   string `json:"bedType" yaml:"bedType"`
	Drawers   int    `json:"drawers" yaml:"drawers"`
	Hydraulic bool   `json:"hydraulic" yaml:"hydraulic"`
	Headboard bool   `json:"headboard" yaml:"headboard"`
}

func DefaultBedOptions() BedOptions {
	return BedOptions{BedType: "queen", Drawers: 0, Hydraulic: false, Headboard: true}
}

func (o Options) Bed() BedOptions {
	d := DefaultBedOptions()
	return BedOptions{
		BedType:   o.String("bedType", d.BedType),
		Drawers:   o.Count("drawers", d.Drawers),
		Hydraulic: o.Bool("hydraulic", d.Hydraulic),
		Headboard: o.Bool("headboard", d.Headboard),
	}
}

type WardrobeOptions struct {
	Shelves     int     `json:"shelves" yaml:"shelves"`
	Shutters    int     `json:"shutters" yaml:"shutters"`
	Drawers     int     `json:"drawers" yaml:"drawers"`
	Loft        bool    `json:"loft" yaml:"loft"`
	LoftHeight  float64 `json:"loftHeight" yaml:"loftHeight"`
	HangingRods int     `json:"hangingRods" yaml:"hangingRods"`
	Mirror      bool    `json:"mirror" yaml:"mirror"`
}

func DefaultWardrobeOptions() WardrobeOptions {
	return WardrobeOptions{
		Shelves:     3,
		Shutters:    2,
		Drawers:     0,
		Loft:        false,
		LoftHeight:  400,
		HangingRods: 1,
		Mirror:      false,
	}
}

func (o Options) Wardrobe() WardrobeOptions {
	d := DefaultWardrobeOptions()
	loftHeight := o.Float("loftHeight", d.LoftHeight)
	if loftHeight < 0 {
		loftHeight = 0
	}
	return WardrobeOptions{
		Shelves:     o.Count("shelves", d.Shelves),
		Shutters:    o.Count("shutters", d.Shutters),
		Drawers:     o.Count("drawers", d.Drawers),
		Loft:        o.Bool("loft", d.Loft),
		LoftHeight:  loftHeight,
		HangingRods: o.Count("hangingRods", d.HangingRods),
		Mirror:      o.Bool("mirror", d.Mirror),
	}
}

type KitchenOptions struct {
	BaseCabinets   int  `json:"baseCabinets" yaml:"baseCabinets"`
	WallCabinets   int  `json:"wallCabinets" yaml:"wallCabinets"`
	PulloutShelves int  `json:"pulloutShelves" yaml:"pulloutShelves"`
	Sink           bool `json:"sink" yaml:"sink"`
	Hob            bool `json:"hob" yaml:"hob"`
}

func DefaultKitchenOptions() KitchenOptions {
	return KitchenOptions{BaseCabinets: 3, WallCabinets: 3, PulloutShelves: 0, Sink: true, Hob: true}
}

func (o Options) Kitchen() KitchenOptions {
	d := DefaultKitchenOptions()
	return KitchenOptions{
		BaseCabinets:   o.Count("baseCabinets", d.BaseCabinets),
		WallCabinets:   o.Count("wallCabinets", d.WallCabinets),
		PulloutShelves: o.Count("pulloutShelves", d.PulloutShelves),
		Sink:           o.Bool("sink", d.Sink),
		Hob:            o.Bool("hob", d.Hob),
	}
}

type TVUnitOptions struct {
	Shelves     int    `json:"shelves" yaml:"shelves"`
	GlassShelf  int    `json:"glassShelf" yaml:"glassShelf"`
	Drawers     int    `json:"drawers" yaml:"drawers"`
	TVSize      string `json:"tvSize" yaml:"tvSize"`
	LEDLighting bool   `json:"ledLighting" yaml:"ledLighting"`
	WallMounted bool   `json:"wallMounted" yaml:"wallMounted"`
}

func DefaultTVUnitOptions() TVUnitOptions {
	return TVUnitOptions{Shelves: 2, GlassShelf: 0, Drawers: 2, TVSize: `55"`}
}

func (o Options) TVUnit() TVUnitOptions {
	d := DefaultTVUnitOptions()
	return TVUnitOptions{
		Shelves:     o.Count("shelves", d.Shelves),
		GlassShelf:  o.Count("glassShelf", d.GlassShelf),
		Drawers:     o.Count("drawers", d.Drawers),
		TVSize:      o.String("tvSize", d.TVSize),
		LEDLighting: o.Bool("ledLighting", d.LEDLighting),
		WallMounted: o.Bool("wallMounted", d.WallMounted),
	}
}

type CabinetOptions struct {
	Shelves int `json:"shelves" yaml:"shelves"`
	Drawers int `json:"drawers" yaml:"drawers"`
	Doors   int `json:"doors" yaml:"doors"`
}

func DefaultCabinetOptions() CabinetOptions {
	return CabinetOptions{Shelves: 2, Drawers: 0, Doors: 2}
}

func (o Options) Cabinet() CabinetOptions {
	d := DefaultCabinetOptions()
	return CabinetOptions{
		Shelves: o.Count("shelves", d.Shelves),
		Drawers: o.Count("drawers", d.Drawers),
		Doors:   o.Count("doors", d.Doors),
	}
}

type BookshelfOptions struct {
	Shelves   int  `json:"shelves" yaml:"shelves"`
	Books     bool `json:"books" yaml:"books"`
	BackPanel bool `json:"backPanel" yaml:"backPanel"`
}

func DefaultBookshelfOptions() BookshelfOptions {
	return BookshelfOptions{Shelves: 4, Books: true, BackPanel: true}
}

func (o Options) Bookshelf() BookshelfOptions {
	d := DefaultBookshelfOptions()
	return BookshelfOptions{
		Shelves:   o.Count("shelves", d.Shelves),
		Books:     o.Bool("books", d.Books),
		BackPanel: o.Bool("backPanel", d.BackPanel),
	}
}

// GenericOptions покрывает door, table, sofa и panel.
type GenericOptions struct {
	Seats  int `json:"seats" yaml:"seats"`
	Panels int `json:"panels" yaml:"panels"`
	Legs   int `json:"legs" yaml:"legs"`
}

func DefaultGenericOptions() GenericOptions {
	return GenericOptions{Seats: 3, Panels: 2, Legs: 4}
}

func (o Options) Generic() GenericOptions {
	d := DefaultGenericOptions()
	return GenericOptions{
		Seats:  o.Count("seats", d.Seats),
		Panels: o.Count("panels", d.Panels),
		Legs:   o.Count("legs", d.Legs),
	}
}

// Defaults возвращает параметры по умолчанию для категории.
// Для неизвестной категории nil.
func Defaults(c Category) any {
	switch c {
	case CategoryBed:
		return DefaultBedOptions()
	case CategoryWardrobe:
		return DefaultWardrobeOptions()
	case CategoryKitchen:
		return DefaultKitchenOptions()
	case CategoryTVUnit:
		return DefaultTVUnitOptions()
	case CategoryCabinet, CategoryDresser:
		return DefaultCabinetOptions()
	case CategoryBookshelf, CategoryShelving:
		return DefaultBookshelfOptions()
	case CategoryDoor, CategoryTable, CategorySofa, CategoryPanel:
		return DefaultGenericOptions()
	}
	return nil
}
