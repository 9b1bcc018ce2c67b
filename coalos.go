// This file is part of CoalOS.
//
// CoalOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// CoalOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with CoalOS.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/coalos/coalos/asciiart"
	"github.com/coalos/coalos/boot"
	"github.com/coalos/coalos/curated"
	"github.com/coalos/coalos/engine"
	"github.com/coalos/coalos/environment"
	"github.com/coalos/coalos/gui/colorterm"
	"github.com/coalos/coalos/gui/display"
	"github.com/coalos/coalos/gui/sdlimgui"
	"github.com/coalos/coalos/gui/sounds"
	"github.com/coalos/coalos/logger"
	"github.com/coalos/coalos/modalflag"
	"github.com/coalos/coalos/prefs"
	"github.com/coalos/coalos/random"
	"github.com/coalos/coalos/resources"
	"github.com/coalos/coalos/savegame"
	"github.com/coalos/coalos/statsview"
	"github.com/coalos/coalos/version"
	"github.com/coalos/coalos/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate. for example, the colorterm frontend
	// handles ctrl-c itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// how long the main thread sleeps when there is no gui to service
const idleSleep = 10 * time.Millisecond

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is  through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil value with a concrete type is not equal to a nil
				// interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			} else {
				time.Sleep(idleSleep)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "TERM":
		err = term(md, sync)

	case "DUMP":
		err = dump(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// options common to every mode that creates an engine.
type options struct {
	log    *bool
	crt    *bool
	seed   *int
	save   *string
	script *string
	click  *string
	modem  *string
	wav    *string
	prefs  *string
	stats  *bool
	fps    *int

	// set to true if the crt flag was given on the command line
	crtSet bool
}

func addOptions(md *modalflag.Modes) *options {
	return &options{
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
		crt:    md.AddBool("crt", true, "apply CRT post-processing. overrides the preferences file"),
		seed:   md.AddInt("seed", 0, "seed for generating network devices. zero seeds from the clock"),
		save:   md.AddString("save", savegame.DefaultFilename, "save file in the saves directory. empty string disables saving"),
		script: md.AddString("boot", "", "boot script to use instead of the builtin script"),
		click:  md.AddString("click", "", "WAV or MP3 file for the key click"),
		modem:  md.AddString("modem", "", "WAV or MP3 file for the modem"),
		wav:    md.AddString("wav", "", "record audio to wav file"),
		prefs:  md.AddString("prefs", "", "preferences to override for this session. eg. \"crt.noise::0; crt.glow::0.5\""),
		stats:  md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		fps:    md.AddInt("fps", 0, "frame rate while the screen is animating"),
	}
}

// parsed must be called after a successful call to Parse() for the mode.
func (opts *options) parsed(md *modalflag.Modes) {
	md.Visit(func(flag string) {
		if flag == "crt" {
			opts.crtSet = true
		}
	})
}

// session is everything needed to run the engine in any of the modes.
type session struct {
	env    *environment.Environment
	prefs  *display.Preferences
	player *sounds.Player
	wav    *wavwriter.WavWriter
	eng    *engine.Engine
}

func newSession(opts *options) (*session, error) {
	ses := &session{}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
	}

	if *opts.stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! stats server not available in this build. build with -tags=statsview")
		}
	}

	var rnd *random.Random
	if *opts.seed != 0 {
		rnd = random.NewSeeded(uint64(*opts.seed))
	} else {
		rnd = random.NewRandom()
	}
	ses.env = environment.NewEnvironment(environment.MainSession, rnd)
	logger.Logf(ses.env, "coalos", "random seed: %d", rnd.Seed())

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	ses.prefs, err = display.NewPreferences(pth)
	if err != nil {
		return nil, err
	}
	if opts.crtSet {
		ses.prefs.SetCRTEnabled(*opts.crt)
	}

	script, err := loadScript(*opts.script)
	if err != nil {
		return nil, err
	}

	artPath, err := resources.JoinPath("art")
	if err != nil {
		return nil, err
	}

	var savePath string
	if *opts.save != "" {
		savePath, err = resources.JoinPath(savegame.SavesDirectory, *opts.save)
		if err != nil {
			return nil, err
		}
	}

	ses.player = sounds.NewPlayer(sounds.NewBank(ses.env, sounds.DefaultRate, *opts.click, *opts.modem))
	if *opts.wav != "" {
		ses.wav, err = wavwriter.New(*opts.wav, sounds.DefaultRate)
		if err != nil {
			return nil, err
		}
		ses.player.AddOutput(ses.wav)
	}

	ses.eng, err = engine.NewEngine(engine.Config{
		Env:      ses.env,
		Prefs:    ses.prefs,
		SavePath: savePath,
		Script:   script,
		Art:      asciiart.NewLibrary(artPath),
		Notify:   ses.player,
	})
	if err != nil {
		return nil, err
	}

	return ses, nil
}

// loadScript from the named file. if the name is empty then the boot script in
// the resources directory is used, if there is one, otherwise the builtin
// script is used.
func loadScript(name string) (boot.Script, error) {
	if name != "" {
		return boot.LoadScript(name)
	}

	pth, err := resources.JoinPath(boot.DefaultFilename)
	if err != nil {
		return boot.Script{}, err
	}

	script, err := boot.LoadScript(pth)
	if err != nil {
		if curated.Is(err, boot.NoScript) {
			return boot.DefaultScript(), nil
		}
		return boot.Script{}, err
	}
	return script, nil
}

// end the session. the wav file is written if one was requested.
func (ses *session) end() error {
	if ses.wav != nil {
		return ses.wav.EndMixing()
	}
	return nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	opts := addOptions(md)
	font := md.AddString("font", "", "TTF font file. the builtin font is used if empty")
	audio := md.AddBool("audio", true, "play sound")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	opts.parsed(md)

	if *opts.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ses, err := newSession(opts)
	if err != nil {
		return err
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		img, err := sdlimgui.NewSdlImgui(ses.eng, sdlimgui.Config{
			FontFile: *font,
			FPS:      *opts.fps,
			Audio:    *audio,
		})
		if err != nil {
			return nil, err
		}

		// the audio device is opened by the gui. the player is used only by
		// the engine, which is serviced on this same thread
		if aud := img.Audio(); aud != nil {
			ses.player.AddOutput(aud)
		}

		return img, nil
	}

	// wait for creator result
	var img *sdlimgui.SdlImgui
	select {
	case g := <-sync.creation:
		img = g.(*sdlimgui.SdlImgui)
	case err := <-sync.creationError:
		return err
	}

	<-img.Finished()

	return ses.end()
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	opts.parsed(md)

	// the log cannot be echoed while the terminal is in use. it is written
	// to stderr when the terminal has been restored
	logger.SetEcho(nil, false)
	if *opts.log {
		defer logger.Write(os.Stderr)
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ses, err := newSession(opts)
	if err != nil {
		return err
	}

	// the colorterm handles ctrl-c itself
	sync.state <- stateRequest{req: reqNoIntSig}

	ct := colorterm.NewColorTerm(ses.eng, *opts.fps)
	err = ct.Run(context.Background())
	if err != nil && !curated.Is(err, colorterm.Interrupted) {
		return errors.Join(err, ses.end())
	}

	return ses.end()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		v, r, release := version.Version()
		fmt.Printf("%s\n%s\n", v, r)
		if !release {
			fmt.Println("development build")
		}
		return nil
	}

	fmt.Println(version.String())
	return nil
}
