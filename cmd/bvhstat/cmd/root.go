package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mirstar13/rtbvh/bvh2"
	"github.com/mirstar13/rtbvh/internal/sahstats"
	"github.com/mirstar13/rtbvh/mesh"
)

var (
	useSAH        bool
	numBins       int
	traversalCost float32
	cfgFile       string
)

// rootCmd builds a tree over every OBJ path given on the command line and
// prints its stats. It is the only subcommand; cobra is used here (rather
// than the stdlib flag package) to match the CLI stack the rest of the
// retrieved corpus builds its tools with, and to get config-file/env
// binding via viper for free.
var rootCmd = &cobra.Command{
	Use:   "bvhstat [obj-file ...]",
	Short: "Build a BVH2 over one or more OBJ meshes and report its stats",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		assets := mesh.NewAssetManager()
		if err := assets.PreloadMeshes(args); err != nil {
			return fmt.Errorf("bvhstat: %w", err)
		}
		providers, err := assets.Providers(args)
		if err != nil {
			return fmt.Errorf("bvhstat: %w", err)
		}

		cfg := bvh2.Config{
			UseSAH:        viper.GetBool("sah"),
			NumBins:       viper.GetInt("bins"),
			TraversalCost: float32(viper.GetFloat64("traversal-cost")),
		}

		builder := bvh2.New(cfg)
		start := time.Now()
		if err := builder.Build(providers); err != nil {
			return fmt.Errorf("bvhstat: build: %w", err)
		}
		elapsed := time.Since(start)

		stats := sahstats.Compute(builder.Nodes(), cfg.TraversalCost)
		fmt.Printf("meshes: %d, build time: %s\n", len(providers), elapsed)
		fmt.Printf("nodes: %d (leaves: %d, internal: %d), max depth: %d\n",
			stats.NodeCount, stats.LeafCount, stats.InternalCount, stats.MaxDepth)
		fmt.Printf("config: sah=%v bins=%d traversal_cost=%.3f\n", cfg.UseSAH, cfg.NumBins, cfg.TraversalCost)
		fmt.Printf("expected traversal cost: %.4f\n", stats.ExpectedCost)
		fmt.Println(assets.Stats())

		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&useSAH, "sah", false, "use binned SAH splitting instead of equal-count median")
	rootCmd.Flags().IntVar(&numBins, "bins", bvh2.DefaultNumBins, "number of SAH bins per axis")
	rootCmd.Flags().Float32Var(&traversalCost, "traversal-cost", 1.0, "internal-node traversal cost used by SAH")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file (yaml/json/toml)")

	_ = viper.BindPFlag("sah", rootCmd.Flags().Lookup("sah"))
	_ = viper.BindPFlag("bins", rootCmd.Flags().Lookup("bins"))
	_ = viper.BindPFlag("traversal-cost", rootCmd.Flags().Lookup("traversal-cost"))

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		_ = viper.ReadInConfig()
	}
	viper.SetEnvPrefix("bvhstat")
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
