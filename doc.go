// Package ballpit is a click-to-spawn ball toy for [Ebitengine].
//
// Each click appends a colored ball to a [Stage]. An [Animator] re-arms
// itself with a [FrameScheduler] once per repaint and moves every ball
// toward the far edges of the viewport. The motion rule is deliberately
// crude: a ball's elapsed time is measured from its creation instant, so
// its per-frame step grows with age, and nothing clamps a ball back into
// the viewport once it overshoots.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	stage := ballpit.NewStage(ballpit.StageConfig{Width: 800, Height: 600})
//	if err := ballpit.Run(ctx, stage, ballpit.RunConfig{ShowFPS: true}); err != nil {
//		log.Fatal(err)
//	}
//
// To drive a stage from another host, queue frames yourself:
//
//	var frames ballpit.FrameQueue
//	anim := ballpit.NewAnimator(stage, &frames)
//	anim.Start(ctx)
//	for anim.Running() {
//		// deliver clicks with stage.ClickStage, then:
//		frames.Flush()
//	}
//
// The term subpackage does exactly this on a tcell screen.
//
// # Elapsed time
//
// [EpochCreation] (the default) keeps the accelerating behavior. Set
// [StageConfig.Epoch] to [EpochFrame] to measure each step from the previous
// frame instead.
//
// # Colors
//
// Colors are "#" plus the hex of a random integer below 0xffffff and are not
// zero padded, so "#a3" is a valid color. [StageConfig.PadColors] pads them
// to six digits.
//
// [Ebitengine]: https://ebitengine.org
package ballpit
