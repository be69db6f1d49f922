package domain

const (
	// GeneratorNinja is the CMake generator for the ninja build tool.
	GeneratorNinja = "Ninja"
	// GeneratorMinGW is the CMake generator for mingw32-make.
	GeneratorMinGW = "MinGW Makefiles"
	// GeneratorUnixMakefiles is the CMake generator for portable make.
	GeneratorUnixMakefiles = "Unix Makefiles"
	// GeneratorVS2019 is the Visual Studio 2019 CMake generator.
	GeneratorVS2019 = "Visual Studio 16 2019"
	// GeneratorVS2022 is the Visual Studio 2022 CMake generator.
	GeneratorVS2022 = "Visual Studio 17 2022"

	// ToolMake is the fixed toolchain of Makefile projects.
	ToolMake = "Make"
	// ToolCargo is the fixed toolchain of Cargo projects.
	ToolCargo = "Cargo"

	// GeneratorDirective is the comment prefix that pins a generator inside CMakeLists.txt.
	GeneratorDirective = "# Focal-Generator:"
	// GeneratorVariable is the CMake variable whose first quoted assignment names a generator.
	GeneratorVariable = "CMAKE_GENERATOR"

	generatorCacheSuffix = "_generator"
)

var generatorAliases = map[string]string{
	"VS162019": GeneratorVS2019,
	"VS172022": GeneratorVS2022,
	"MinGW":    GeneratorMinGW,
	"Ninja":    GeneratorNinja,
	"Make":     GeneratorUnixMakefiles,
}

// ExpandGeneratorAlias maps a directive shorthand to its canonical generator name.
// Unknown names are returned unchanged.
func ExpandGeneratorAlias(name string) string {
	if canonical, ok := generatorAliases[name]; ok {
		return canonical
	}
	return name
}

// GeneratorCacheKey returns the toolchain cache key for a project path.
func GeneratorCacheKey(projectPath string) string {
	return projectPath + generatorCacheSuffix
}

// GeneratorCandidate pairs an executable with the generator selected when it is available.
type GeneratorCandidate struct {
	Binary    string
	Generator string
}

// GeneratorSearchOrder is the preference order of automatic generator selection.
var GeneratorSearchOrder = []GeneratorCandidate{
	{Binary: "ninja", Generator: GeneratorNinja},
	{Binary: "mingw32-make", Generator: GeneratorMinGW},
	{Binary: "make", Generator: GeneratorUnixMakefiles},
}

// FallbackGenerator is used when no candidate of GeneratorSearchOrder is installed.
func FallbackGenerator(goos string) string {
	if goos == "windows" {
		return GeneratorVS2019
	}
	return GeneratorUnixMakefiles
}

// ToolSpec describes an executable reported by the tool inventory.
type ToolSpec struct {
	Binary string
	Label  string
}

// ToolStatus is one line of the tool inventory.
type ToolStatus struct {
	ToolSpec
	Available bool
}

// BuildTools are the executables counted by the tool inventory summary.
var BuildTools = []ToolSpec{
	{Binary: "cmake", Label: "CMake"},
	{Binary: "make", Label: "Make"},
	{Binary: "ninja", Label: "Ninja"},
	{Binary: "mingw32-make", Label: "MinGW Make"},
	{Binary: "g++", Label: "GCC C++ Compiler"},
	{Binary: "cargo", Label: "Cargo"},
}

// VisualStudioTools are reported by the inventory but not counted in its summary.
var VisualStudioTools = []ToolSpec{
	{Binary: "cl", Label: "Visual Studio Compiler (cl.exe)"},
	{Binary: "devenv", Label: "Visual Studio IDE"},
}

// ToolInventory is the result of a tool availability check.
type ToolInventory struct {
	Build                 []ToolStatus
	VisualStudio          []ToolStatus
	VisualStudioInstalled bool
}

// AvailableCount returns how many build tools were found.
func (inv ToolInventory) AvailableCount() int {
	n := 0
	for _, s := range inv.Build {
		if s.Available {
			n++
		}
	}
	return n
}
