// verify_gameplay 用脚本输入驱动一次完整的收集流程
//
// 默认无窗口运行：按住右方向键并周期性起跳，直到进入 Complete 阶段，
// 打印每次收集与完成时的帧号。加 -window 可以在窗口中观看同一脚本的回放。
//
// 用法:
//
//	go run ./cmd/verify_gameplay -verbose
//	go run ./cmd/verify_gameplay -window -jump-every 45
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/folio/pkg/config"
	"github.com/gonewx/folio/pkg/input"
	"github.com/gonewx/folio/pkg/platformer"
	"github.com/gonewx/folio/pkg/render"
)

var (
	verbose      = flag.Bool("verbose", false, "显示引擎日志")
	tuningPath   = flag.String("tuning", "data/tuning.yaml", "参数文件路径")
	projectsPath = flag.String("projects", "data/projects.yaml", "项目列表路径")
	maxFrames    = flag.Int("frames", 3600, "最多运行的帧数")
	jumpEvery    = flag.Int("jump-every", 0, "每隔多少帧起跳一次，0 表示不跳")
	seed         = flag.Int64("seed", 1, "随机种子")
	window       = flag.Bool("window", false, "在窗口中回放")
)

// buildScript 按住右方向键，按 jumpEvery 周期点按空格
func buildScript(frames, jumpEvery int) *input.Script {
	s := input.NewScript().Then(input.Press(input.KeyArrowRight))
	for i := 1; i < frames; i++ {
		switch {
		case jumpEvery > 0 && i%jumpEvery == 0:
			s.Then(input.Press(input.KeySpace))
		case jumpEvery > 0 && i%jumpEvery == 1:
			s.Then(input.Release(input.KeySpace))
		default:
			s.Wait(1)
		}
	}
	return s
}

// run 记录收集与完成事件
type run struct {
	engine      *platformer.Engine
	script      *input.Script
	frame       int
	collectedAt []int
	completeAt  int
}

func newRun(tuning *config.Tuning, projects []config.Project) *run {
	r := &run{completeAt: -1}
	r.engine = platformer.New(tuning, projects, platformer.Callbacks{
		OnCollected: func(index int, p config.Project) {
			r.collectedAt = append(r.collectedAt, r.frame)
			fmt.Printf("frame %5d  collected #%d %q\n", r.frame, index, p.Title)
		},
		OnComplete: func() {
			r.completeAt = r.frame
			fmt.Printf("frame %5d  complete\n", r.frame)
		},
	}, rand.New(rand.NewSource(*seed)))
	r.script = buildScript(*maxFrames, *jumpEvery)
	r.engine.Attach(r.script)
	return r
}

// step 推进一帧，返回本帧的绘制命令（结束后为 nil）
func (r *run) step() *render.Frame {
	r.frame++
	dt := 1.0 / 60.0
	return r.engine.Step(dt, r.engine.Poll())
}

func (r *run) done() bool {
	return r.engine.State() == platformer.Complete || r.frame >= *maxFrames
}

func (r *run) report() error {
	fmt.Printf("collected %d/%d, scroll %.0f, frames %d, entities %d\n",
		r.engine.Collected(), r.engine.Total(), r.engine.ScrollOffset(), r.frame, r.engine.Entities())
	if r.engine.State() != platformer.Complete {
		return errors.New("did not reach complete state")
	}
	return nil
}

// viewer 窗口回放
type viewer struct {
	run     *run
	painter *render.Painter
	last    *render.Frame
}

func (v *viewer) Update() error {
	if v.run.done() {
		v.run.engine.Teardown()
		return ebiten.Termination
	}
	if f := v.run.step(); f != nil {
		v.last = f
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.last != nil {
		v.painter.Paint(screen, v.last, 0, 0)
	}
}

func (v *viewer) Layout(int, int) (int, int) {
	w := v.run.engine.Tuning().World
	return int(w.Width), int(w.Height)
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	tuning, err := config.LoadTuning(*tuningPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load tuning: %v\n", err)
		os.Exit(1)
	}
	projects, err := config.LoadProjects(*projectsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load projects: %v\n", err)
		os.Exit(1)
	}

	r := newRun(tuning, projects)

	if *window {
		painter, err := render.NewPainter()
		if err != nil {
			fmt.Fprintf(os.Stderr, "load font: %v\n", err)
			os.Exit(1)
		}
		w := tuning.World
		ebiten.SetWindowSize(int(w.Width), int(w.Height))
		ebiten.SetWindowTitle("verify_gameplay")
		if err := ebiten.RunGame(&viewer{run: r, painter: painter}); err != nil && !errors.Is(err, ebiten.Termination) {
			fmt.Fprintf(os.Stderr, "run: %v\n", err)
			os.Exit(1)
		}
	} else {
		for !r.done() {
			r.step()
		}
		r.engine.Teardown()
	}

	if err := r.report(); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")
}
