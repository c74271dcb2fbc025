package board

// Selection tracks the three independent pieces of UI focus state. Empty
// string means nothing selected. Switching boards never touches MemberID:
// the member filter survives board navigation.
type Selection struct {
	BoardID  string
	MemberID string
	TaskID   string
}

// Selection returns the current focus state.
func (s *Store) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// SelectMember focuses a member. Unknown ids return ErrNotFound; an empty
// id clears the selection.
func (s *Store) SelectMember(memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if memberID == "" {
		s.selection.MemberID = ""
		return nil
	}
	for _, m := range s.members {
		if m.ID == memberID {
			s.selection.MemberID = memberID
			return nil
		}
	}
	return ErrNotFound
}

// SelectTask focuses a task. Unknown ids return ErrNotFound; an empty id
// clears the selection.
func (s *Store) SelectTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if taskID == "" {
		s.selection.TaskID = ""
		return nil
	}
	if _, _, t := s.taskLocked(taskID); t == nil {
		return ErrNotFound
	}
	s.selection.TaskID = taskID
	return nil
}
