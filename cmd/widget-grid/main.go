package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wcatz/widget-grid/internal/config"
	"github.com/wcatz/widget-grid/internal/grid"
	"github.com/wcatz/widget-grid/internal/server"
	"github.com/wcatz/widget-grid/internal/store"
)

var (
	cfgFile    string
	layoutFile string
	outputFile string
	widgetID   string
	width      int
	height     int
	cols       int
	minWidth   int
	pixelWidth int
	sizeList   string
	writeBack  bool
	verbose    bool
	servePort  int
	layoutDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "widget-grid",
		Short: "dashboard widget grid layout engine",
	}

	placeCmd := &cobra.Command{
		Use:   "place",
		Short: "find a free position for a new widget in a layout file",
		RunE:  runPlace,
	}
	placeCmd.Flags().StringVar(&layoutFile, "layout", "", "path to layout JSON file (required)")
	placeCmd.Flags().IntVar(&width, "width", 0, "widget width in cells (default from config)")
	placeCmd.Flags().IntVar(&height, "height", 0, "widget height in cells (default from config)")
	placeCmd.Flags().IntVar(&cols, "cols", 0, "override the layout's column count")
	placeCmd.Flags().StringVar(&widgetID, "id", "", "id for the new widget (generated if empty)")
	placeCmd.Flags().BoolVar(&writeBack, "write", false, "append the placed widget and rewrite the layout file")
	placeCmd.MarkFlagRequired("layout")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "validate every widget in a layout file and check for overlaps",
		RunE:  runValidate,
	}
	validateCmd.Flags().StringVar(&layoutFile, "layout", "", "path to layout JSON file (required)")
	validateCmd.Flags().IntVar(&cols, "cols", 0, "override the layout's column count")
	validateCmd.MarkFlagRequired("layout")

	compactCmd := &cobra.Command{
		Use:   "compact",
		Short: "remove vertical gaps from a layout file",
		RunE:  runCompact,
	}
	compactCmd.Flags().StringVar(&layoutFile, "layout", "", "path to layout JSON file (required)")
	compactCmd.Flags().StringVar(&outputFile, "output", "", "write the result to this path instead of stdout")
	compactCmd.Flags().BoolVar(&writeBack, "write", false, "rewrite the layout file in place")
	compactCmd.MarkFlagRequired("layout")

	breakpointCmd := &cobra.Command{
		Use:   "breakpoint",
		Short: "map a viewport width to its breakpoint and column count",
		RunE:  runBreakpoint,
	}
	breakpointCmd.Flags().IntVar(&pixelWidth, "width", 0, "viewport width in pixels (required)")
	breakpointCmd.MarkFlagRequired("width")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "create a layout file by flowing widgets into rows",
		RunE:  runInit,
	}
	initCmd.Flags().StringVar(&layoutFile, "layout", "", "path of the layout JSON file to create (required)")
	initCmd.Flags().StringVar(&sizeList, "sizes", "", "comma-separated widget sizes, e.g. 6x4,6x4,12x8 (required)")
	initCmd.Flags().IntVar(&cols, "cols", 0, "column count (default from config)")
	initCmd.MarkFlagRequired("layout")
	initCmd.MarkFlagRequired("sizes")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "edit the YAML config file in place",
	}
	setGridCmd := &cobra.Command{
		Use:   "set-grid <key> <value>",
		Short: "set a grid setting (cols, default_width, default_height, max_scan_rows)",
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSetGrid,
	}
	setBreakpointCmd := &cobra.Command{
		Use:   "set-breakpoint <name>",
		Short: "add or update a breakpoint entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigSetBreakpoint,
	}
	setBreakpointCmd.Flags().IntVar(&minWidth, "min-width", 0, "minimum viewport width in pixels")
	setBreakpointCmd.Flags().IntVar(&cols, "cols", 0, "column count for this breakpoint (required)")
	setBreakpointCmd.MarkFlagRequired("cols")
	deleteBreakpointCmd := &cobra.Command{
		Use:   "delete-breakpoint <name>",
		Short: "remove a breakpoint entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigDeleteBreakpoint,
	}
	configCmd.AddCommand(setGridCmd, setBreakpointCmd, deleteBreakpointCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "start the layout HTTP API",
		RunE:  runServe,
	}
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP server port (default from config)")
	serveCmd.Flags().StringVar(&layoutDir, "layout-dir", "", "directory of stored layouts (default from config)")
	serveCmd.Flags().BoolVar(&verbose, "verbose", false, "log at debug level with console output")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	rootCmd.AddCommand(placeCmd, validateCmd, compactCmd, breakpointCmd, initCmd, configCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

func loadLayoutFile(path string) (store.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return store.Layout{}, fmt.Errorf("reading layout: %w", err)
	}
	return store.Decode(data)
}

func writeLayoutFile(path string, l store.Layout) error {
	data, err := store.Encode(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing layout: %w", err)
	}
	return nil
}

func runPlace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layout, err := loadLayoutFile(layoutFile)
	if err != nil {
		return err
	}
	if cols > 0 {
		layout.Cols = cols
	}
	w, h := width, height
	if w == 0 {
		w = cfg.Grid.DefaultWidth
	}
	if h == 0 {
		h = cfg.Grid.DefaultHeight
	}

	placement, err := grid.FindAvailablePositionCapped(layout.Rects(), w, h, layout.Cols, cfg.Grid.MaxScanRows)
	if err != nil {
		return err
	}
	if placement.Exhausted {
		return fmt.Errorf("no free %dx%d position within %d rows", w, h, cfg.Grid.MaxScanRows)
	}

	r := placement.Rect
	fmt.Printf("free position: x=%d y=%d w=%d h=%d\n", r.X, r.Y, r.W, r.H)

	if writeBack {
		id := widgetID
		if id == "" {
			id = uuid.NewString()
		}
		for _, existing := range layout.Widgets {
			if existing.ID == id {
				return fmt.Errorf("widget id '%s' already in layout", id)
			}
		}
		layout.Widgets = append(layout.Widgets, grid.Widget{ID: id, Rect: r})
		if err := writeLayoutFile(layoutFile, layout); err != nil {
			return err
		}
		fmt.Printf("added widget %s to %s\n", id, layoutFile)
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	layout, err := loadLayoutFile(layoutFile)
	if err != nil {
		return err
	}
	if cols > 0 {
		layout.Cols = cols
	}

	report, err := grid.ValidateLayout(layout.Widgets, layout.Cols)
	if err != nil {
		return err
	}
	if report.Valid {
		fmt.Printf("%s: %d widgets, valid\n", layoutFile, len(layout.Widgets))
		return nil
	}

	for _, w := range layout.Widgets {
		r := report.Widgets[w.ID]
		for _, msg := range r.Errors {
			fmt.Printf("  %s: %s\n", w.ID, msg)
		}
	}
	for _, pair := range report.Overlaps {
		fmt.Printf("  overlap: %s and %s\n", pair[0], pair[1])
	}
	return fmt.Errorf("layout invalid")
}

func runCompact(cmd *cobra.Command, args []string) error {
	layout, err := loadLayoutFile(layoutFile)
	if err != nil {
		return err
	}
	layout.Widgets = grid.Compact(layout.Widgets)

	switch {
	case writeBack:
		if err := writeLayoutFile(layoutFile, layout); err != nil {
			return err
		}
		fmt.Printf("compacted %s: %d widgets\n", layoutFile, len(layout.Widgets))
	case outputFile != "":
		if err := writeLayoutFile(outputFile, layout); err != nil {
			return err
		}
		fmt.Printf("compacted %s -> %s: %d widgets\n", layoutFile, outputFile, len(layout.Widgets))
	default:
		data, err := store.Encode(layout)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	}
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gridCols := cols
	if gridCols == 0 {
		gridCols = cfg.Grid.Cols
	}

	sizes, err := parseSizes(sizeList)
	if err != nil {
		return err
	}

	flow := grid.NewFlow(gridCols)
	layout := store.Layout{Cols: gridCols}
	for i, sz := range sizes {
		layout.Widgets = append(layout.Widgets, grid.Widget{
			ID:   fmt.Sprintf("w%d", i+1),
			Rect: flow.Place(sz[0], sz[1]),
		})
	}

	if err := writeLayoutFile(layoutFile, layout); err != nil {
		return err
	}
	fmt.Printf("created %s: %d widgets on %d columns\n", layoutFile, len(layout.Widgets), gridCols)
	return nil
}

// parseSizes parses "6x4,6x4,12x8" into width/height pairs.
func parseSizes(s string) ([][2]int, error) {
	var sizes [][2]int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		w, h, ok := strings.Cut(part, "x")
		if !ok {
			return nil, fmt.Errorf("bad size '%s': want WxH", part)
		}
		wn, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("bad width in '%s': %w", part, err)
		}
		hn, err := strconv.Atoi(h)
		if err != nil {
			return nil, fmt.Errorf("bad height in '%s': %w", part, err)
		}
		if wn < 1 || hn < 1 {
			return nil, fmt.Errorf("bad size '%s': dimensions must be positive", part)
		}
		sizes = append(sizes, [2]int{wn, hn})
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

func runConfigSetGrid(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return fmt.Errorf("--config is required for config edits")
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad value '%s': %w", args[1], err)
	}
	if err := config.NewYAMLEditor(cfgFile).SetGridValue(args[0], value); err != nil {
		return err
	}
	fmt.Printf("set grid.%s = %d in %s\n", args[0], value, cfgFile)
	return nil
}

func runConfigSetBreakpoint(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return fmt.Errorf("--config is required for config edits")
	}
	def := config.BreakpointDef{MinWidth: minWidth, Cols: cols}
	if err := config.NewYAMLEditor(cfgFile).SetBreakpoint(args[0], def); err != nil {
		return err
	}
	fmt.Printf("set breakpoint %s: min_width=%d cols=%d in %s\n", args[0], def.MinWidth, def.Cols, cfgFile)
	return nil
}

func runConfigDeleteBreakpoint(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return fmt.Errorf("--config is required for config edits")
	}
	if err := config.NewYAMLEditor(cfgFile).DeleteBreakpoint(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted breakpoint %s from %s\n", args[0], cfgFile)
	return nil
}

func runBreakpoint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	table := cfg.Table()
	name := table.BreakpointFor(pixelWidth)
	fmt.Printf("%dpx -> %s (%d cols)\n", pixelWidth, name, table.ColumnsFor(name))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	port := servePort
	if port == 0 {
		port = cfg.Server.Port
	}
	dir := layoutDir
	if dir == "" {
		dir = cfg.Server.LayoutDir
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	st, err := store.New(dir)
	if err != nil {
		return err
	}
	srv := server.New(cfgFile, cfg, st, logger)
	return srv.ListenAndServe(fmt.Sprintf(":%d", port))
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
