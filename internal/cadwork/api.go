// Package cadwork defines the seam to the native Cadwork scripting API.
// The bridge dispatches into these interfaces; the production plug-in
// binds them to the vendor controllers, and internal/sim provides an
// in-memory stand-in for development and tests.
package cadwork

// ElementController creates, selects and removes model elements.
type ElementController interface {
	CreateRectangularBeam(width, height float64, p1, p2, p3 Point) (int, error)
	CreateRectangularPanel(width, thickness float64, p1, p2, p3 Point) (int, error)
	// Optional orientation points are nil when the vendor default applies.
	CreateCircularBeam(diameter float64, p1, p2 Point, p3 *Point) (int, error)
	CreateSquareBeam(width float64, p1, p2 Point, p3 *Point) (int, error)
	CreateStandardBeam(standardName string, p1, p2 Point, p3 *Point) (int, error)
	CreateStandardPanel(standardName string, p1, p2 Point, p3 *Point) (int, error)
	CreateDrilling(diameter float64, p1, p2 Point) (int, error)
	CreatePolygonBeam(vertices []Point, thickness float64, xl, zl Point) (int, error)

	ActiveElementIDs() ([]int, error)
	AllElementIDs() ([]int, error)
	VisibleElementIDs() ([]int, error)
	// UserElementIDs returns the user selection; count <= 0 means no limit.
	UserElementIDs(count int) ([]int, error)

	DeleteElements(ids []int) error
	CopyElements(ids []int, vector Point) ([]int, error)
	MoveElements(ids []int, vector Point) error
	ElementType(id int) (ElementType, error)
}

// GeometryController reads and transforms element geometry.
type GeometryController interface {
	Width(id int) (float64, error)
	Height(id int) (float64, error)
	Length(id int) (float64, error)
	Volume(id int) (float64, error)
	Weight(id int) (float64, error)

	XL(id int) (Point, error)
	YL(id int) (Point, error)
	ZL(id int) (Point, error)
	P1(id int) (Point, error)
	P2(id int) (Point, error)
	P3(id int) (Point, error)

	CenterOfGravity(id int) (Point, error)
	CenterOfGravityForList(ids []int) (Point, error)
	Vertices(id int) ([]Point, error)
	MinimumDistance(firstID, secondID int) (float64, error)
	Facets(id int) ([][]Point, error)
	ReferenceFaceArea(id int) (float64, error)
	TotalFaceArea(id int) (float64, error)

	RotateElements(ids []int, origin, axis Point, angleDeg float64) error
	ApplyGlobalScale(ids []int, factor float64, origin Point) error
	InvertModel(ids []int) error
	RotateHeightAxis90(ids []int) error
	RotateLengthAxis90(ids []int) error
}

// AttributeController reads element attributes and user attribute slots.
type AttributeController interface {
	Name(id int) (string, error)
	Group(id int) (string, error)
	Subgroup(id int) (string, error)
	Comment(id int) (string, error)
	MaterialName(id int) (string, error)
	UserAttribute(id, number int) (string, error)
	// UserAttributeName returns the configured label of a user attribute
	// slot, or "" when the slot is undefined.
	UserAttributeName(number int) (string, error)
}

// UtilityController exposes application-level state and UI messaging.
type UtilityController interface {
	FilePath() (string, error)
	ProjectData() (map[string]string, error)
	VersionInfo() (VersionInfo, error)
	PrintError(message string) error
	PrintWarning(message string) error
	DisableAutoDisplayRefresh() error
	EnableAutoDisplayRefresh() error
}

// VisualizationController controls element display state.
type VisualizationController interface {
	SetColor(id, colorID int) error
	Color(id int) (int, error)
	ShowElement(id int) error
	HideElement(id int) error
	SetTransparency(id, percent int) error
	Transparency(id int) (int, error)
	RefreshDisplay() error
}

// STEPOptions parameterize STEP export.
type STEPOptions struct {
	ScaleFactor float64
	Version     int
	TextMode    bool
	Drillings   bool
}

// FileController handles geometry interchange with external formats.
type FileController interface {
	ExportSTEP(ids []int, path string, opts STEPOptions) error
	Export3DM(ids []int, path string, version int) error
	ExportOBJ(ids []int, path string) error
	ExportPLY(ids []int, path string, binary bool) error
	ExportSTL(ids []int, path string, binary bool) error
	ExportGLTF(ids []int, path string, binaryGLB bool) error
	ExportX3D(ids []int, path string) error
	ExportFBX(ids []int, path string, format int) error
	ExportWebGL(ids []int, path string) error
	ExportSAT(ids []int, path string, scale float64, binary bool, version int) error
	ExportDSTV(path string) error
	ExportProductionData(path string) error
	ExportBTLNesting(path string) error

	ImportSTEP(path string, scale float64, hideMessages bool) ([]int, error)
	ImportSAT(path string, scale float64, binary bool, silent bool) ([]int, error)
	ImportRhino(path string, withoutDialog bool) ([]int, error)
	ImportBTL(path string) error
	ImportBTLNesting(path string) error
}

// MachineController covers CNC production checks.
type MachineController interface {
	// CheckProductionList returns human-readable discrepancy findings
	// for the given production list.
	CheckProductionList(listID int) ([]string, error)
}

// ShopDrawingController adds section views to shop drawings.
type ShopDrawingController interface {
	AddWallSectionX(wallID int) (int, error)
	AddWallSectionY(wallID int) (int, error)
}

// API aggregates the controller seam handed to the dispatcher.
type API struct {
	Elements      ElementController
	Geometry      GeometryController
	Attributes    AttributeController
	Utility       UtilityController
	Visualization VisualizationController
	Files         FileController
	Machine       MachineController
	ShopDrawings  ShopDrawingController
}
