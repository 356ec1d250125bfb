package catalog

// Location is a named area commuters search by. Names are free-text labels;
// matching is always substring, never exact.
type Location struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);index;not null" json:"name"`
}

func (Location) TableName() string { return "locations" }

// Route is one curated path between two locations. Rows are seeded once and
// never mutated by the resolver.
type Route struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FromLocationID uint   `gorm:"index;not null" json:"from_location_id"`
	ToLocationID   uint   `gorm:"index;not null" json:"to_location_id"`
	TotalPrice     int    `json:"total_price"`
	TotalTime      int    `json:"total_time"`
	RouteTag       string `gorm:"type:varchar(64)" json:"route_tag"`

	FromLocation *Location   `gorm:"foreignKey:FromLocationID" json:"from_location,omitempty"`
	ToLocation   *Location   `gorm:"foreignKey:ToLocationID" json:"to_location,omitempty"`
	Steps        []RouteStep `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE;" json:"steps,omitempty"`
}

func (Route) TableName() string { return "routes" }

// RouteStep is a single leg of a route. StepOrder defines the riding order.
type RouteStep struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	RouteID          uint   `gorm:"index;not null" json:"route_id"`
	StepOrder        int    `gorm:"not null" json:"step_order"`
	TransportType    string `gorm:"type:varchar(32);not null" json:"transport_type"`
	LineName         string `gorm:"type:varchar(128)" json:"line_name"`
	BoardingPoint    string `gorm:"type:varchar(255)" json:"boarding_point"`
	ExitPoint        string `gorm:"type:varchar(255)" json:"exit_point"`
	DirectionDetails string `gorm:"type:varchar(255)" json:"direction_details"`
	HumanTip         string `gorm:"type:text" json:"human_tip"`
}

func (RouteStep) TableName() string { return "route_steps" }
