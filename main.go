package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/folio/pkg/app"
	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	tuningPath := flag.String("tuning", "", "参数文件路径（默认使用内置 data/tuning.yaml）")
	projectsPath := flag.String("projects", "", "项目列表路径（默认使用内置 data/projects.yaml）")
	touch := flag.Bool("touch", false, "显示屏幕按键")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		TuningPath:   *tuningPath,
		ProjectsPath: *projectsPath,
		Touch:        *touch,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle("Selected Work")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
