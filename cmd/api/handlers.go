package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nurse-roster/internal/models"
	"nurse-roster/internal/roster"

	"go.uber.org/zap"
)

// genErrorMessage is the single user-facing message for any failed
// generation attempt; the cause only goes to the log.
const genErrorMessage = "Could not generate schedule. Retry or check connectivity."

// preconditionMessage is shown when generation is triggered with an empty
// nurse list.
const preconditionMessage = "Add at least one nurse before generating a schedule."

func handleRoster(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	nurses := store.Nurses()
	now := time.Now()

	formMu.RLock()
	data := RosterPageData{
		Nurses:     nurses,
		AddError:   addError,
		AddName:    addName,
		DayOptions: dayOptions(now),
		Shifts:     shiftOptions(),
	}
	formMu.RUnlock()

	genMu.RLock()
	data.Generating = generating
	data.GenError = genError
	if current != nil {
		data.Schedule = buildScheduleView(current, nurses, now)
	}
	genMu.RUnlock()

	render(w, r, "roster", data, "ui/templates/roster.html")
}

func handleAddNurse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")

	_, err := store.Add(name)

	formMu.Lock()
	switch {
	case errors.Is(err, roster.ErrEmptyName):
		addError = "Nurse name cannot be empty."
		addName = name
	case errors.Is(err, roster.ErrDuplicateName):
		addError = "That nurse is already on the list."
		addName = name
	default:
		addError = ""
		addName = ""
	}
	formMu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func handleRemoveNurse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	store.Remove(r.FormValue("id"))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleSavePreferences commits the preference modal for one nurse. The
// submitted form carries the final desired state; it is replayed through a
// draft seeded from the nurse's current preferences so that toggle and
// reason semantics apply, then committed atomically via Replace.
func handleSavePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	nurse, ok := store.Get(r.FormValue("id"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	draft := roster.NewDraft(nurse)

	wantShifts := make(map[models.ShiftType]bool)
	for _, v := range r.Form["shifts"] {
		if shift := models.ShiftType(v); shift.Valid() {
			wantShifts[shift] = true
		}
	}
	for _, shift := range models.Shifts {
		if wantShifts[shift] != draft.Preferences().PrefersShift(shift) {
			draft.ToggleShift(shift)
		}
	}

	wantDays := make(map[models.DayOfWeek]bool)
	for _, v := range r.Form["days"] {
		if day := models.DayOfWeek(v); day.Valid() {
			wantDays[day] = true
		}
	}
	for _, day := range models.Days {
		if wantDays[day] != draft.Preferences().IsUnavailable(day) {
			draft.ToggleDay(day)
		}
		if wantDays[day] {
			draft.SetReason(day, r.FormValue("reason_"+string(day)))
		}
	}

	store.Replace(draft.Nurse())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleGenerate launches one background generation for a snapshot of the
// current nurse list. The trigger is a no-op while a request is already in
// flight, and a precondition error when the list is empty.
func handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	genMu.Lock()
	if generating {
		genMu.Unlock()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	snapshot := store.Nurses()
	if len(snapshot) == 0 {
		genError = preconditionMessage
		genMu.Unlock()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	generating = true
	genError = ""
	current = nil
	genMu.Unlock()

	go runGeneration(snapshot)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func runGeneration(snapshot []models.Nurse) {
	sched, err := generator.Generate(context.Background(), snapshot)

	genMu.Lock()
	defer genMu.Unlock()
	generating = false
	if err != nil {
		logger.Warn("Generation attempt failed", zap.Error(err), zap.Int("nurses", len(snapshot)))
		genError = genErrorMessage
		return
	}
	current = sched
}
