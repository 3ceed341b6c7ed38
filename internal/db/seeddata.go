package db

type foodSeed struct {
	name    string
	cal     float64
	protein float64
	carbs   float64
	fat     float64
	fiber   float64
	sugar   float64
	sodium  float64
}

// Per-100g values, whole-food averages.
var seedFoods = []foodSeed{
	{"Chicken Breast (cooked)", 165, 31, 0, 3.6, 0, 0, 74},
	{"Chicken Thigh (cooked)", 209, 26, 0, 10.9, 0, 0, 88},
	{"Lean Ground Beef 5% (cooked)", 171, 26, 0, 6.5, 0, 0, 72},
	{"Ribeye Steak (cooked)", 291, 24, 0, 21.8, 0, 0, 54},
	{"Salmon (cooked)", 208, 20, 0, 13.4, 0, 0, 59},
	{"Tuna (canned in water)", 116, 25.5, 0, 0.8, 0, 0, 247},
	{"Cod (cooked)", 105, 22.8, 0, 0.9, 0, 0, 78},
	{"Shrimp (cooked)", 99, 24, 0.2, 0.3, 0, 0, 111},
	{"Whole Egg", 155, 12.6, 1.1, 10.6, 0, 1.1, 124},
	{"Egg White", 52, 10.9, 0.7, 0.2, 0, 0.7, 166},
	{"Greek Yogurt 0%", 59, 10.3, 3.6, 0.4, 0, 3.2, 36},
	{"Cottage Cheese 2%", 84, 11, 4.3, 2.3, 0, 4.1, 330},
	{"Skyr", 63, 11, 4, 0.2, 0, 4, 45},
	{"Whole Milk", 61, 3.2, 4.8, 3.3, 0, 5.1, 43},
	{"Cheddar Cheese", 403, 24.9, 1.3, 33.1, 0, 0.5, 621},
	{"Whey Protein Powder", 400, 80, 8, 6, 0, 5, 200},
	{"White Rice (cooked)", 130, 2.7, 28.2, 0.3, 0.4, 0.1, 1},
	{"Brown Rice (cooked)", 112, 2.3, 23.5, 0.8, 1.8, 0.4, 5},
	{"Oats (dry)", 389, 16.9, 66.3, 6.9, 10.6, 0.9, 2},
	{"Whole Wheat Bread", 247, 13, 41, 3.4, 7, 6, 472},
	{"Pasta (cooked)", 158, 5.8, 30.9, 0.9, 1.8, 0.6, 1},
	{"Potato (boiled)", 87, 1.9, 20.1, 0.1, 1.8, 0.9, 4},
	{"Sweet Potato (baked)", 90, 2, 20.7, 0.2, 3.3, 6.5, 36},
	{"Quinoa (cooked)", 120, 4.4, 21.3, 1.9, 2.8, 0.9, 7},
	{"Banana", 89, 1.1, 22.8, 0.3, 2.6, 12.2, 1},
	{"Apple", 52, 0.3, 13.8, 0.2, 2.4, 10.4, 1},
	{"Blueberries", 57, 0.7, 14.5, 0.3, 2.4, 10, 1},
	{"Strawberries", 32, 0.7, 7.7, 0.3, 2, 4.9, 1},
	{"Avocado", 160, 2, 8.5, 14.7, 6.7, 0.7, 7},
	{"Broccoli (cooked)", 35, 2.4, 7.2, 0.4, 3.3, 1.4, 41},
	{"Spinach (raw)", 23, 2.9, 3.6, 0.4, 2.2, 0.4, 79},
	{"Carrot (raw)", 41, 0.9, 9.6, 0.2, 2.8, 4.7, 69},
	{"Olive Oil", 884, 0, 0, 100, 0, 0, 2},
	{"Butter", 717, 0.9, 0.1, 81.1, 0, 0.1, 11},
	{"Peanut Butter", 588, 25.1, 19.6, 50, 6, 9.2, 426},
	{"Almonds", 579, 21.2, 21.6, 49.9, 12.5, 4.4, 1},
	{"Walnuts", 654, 15.2, 13.7, 65.2, 6.7, 2.6, 2},
	{"Dark Chocolate 85%", 592, 9.6, 30.7, 46.3, 12.1, 14.3, 20},
	{"Honey", 304, 0.3, 82.4, 0, 0.2, 82.1, 4},
	{"Lentils (cooked)", 116, 9, 20.1, 0.4, 7.9, 1.8, 2},
	{"Chickpeas (cooked)", 164, 8.9, 27.4, 2.6, 7.6, 4.8, 7},
	{"Black Beans (cooked)", 132, 8.9, 23.7, 0.5, 8.7, 0.3, 1},
	{"Tofu (firm)", 144, 17.3, 2.8, 8.7, 2.3, 0.6, 14},
}

type supplementRefSeed struct {
	name        string
	category    string
	dose        string
	timing      string
	benefits    string
	precautions string
}

var seedSupplementRefs = []supplementRefSeed{
	{"Creatine Monohydrate", "Essential", "5g daily", "Any time, consistency matters more than timing", "Increases strength, power output, muscle hydration, cognitive function", "May cause water retention initially. Stay hydrated."},
	{"Vitamin D3", "Essential", "2000-5000 IU daily", "With a meal containing fat for better absorption", "Bone health, immune function, mood, testosterone support", "Get levels tested. High doses can cause toxicity."},
	{"Omega-3 Fish Oil", "Essential", "1-3g EPA+DHA daily", "With meals to reduce fishy burps", "Heart health, brain function, inflammation reduction, joint health", "May thin blood. Stop before surgery."},
	{"Magnesium Glycinate", "Essential", "200-400mg daily", "Before bed (promotes relaxation)", "Sleep quality, muscle relaxation, stress reduction, over 300 enzymatic reactions", "High doses may cause loose stools."},
	{"Magnesium Citrate", "Essential", "200-400mg daily", "Any time, can take with or without food", "Muscle function, energy production, sleep support", "Higher doses may have laxative effect."},
	{"Zinc", "Essential", "15-30mg daily", "With food to prevent nausea", "Immune function, testosterone, wound healing, protein synthesis", "Do not exceed 40mg/day. Can cause copper deficiency."},
	{"Vitamin K2 (MK-7)", "Essential", "100-200mcg daily", "With Vitamin D3 and fat-containing meal", "Directs calcium to bones, cardiovascular health", "May interact with blood thinners."},
	{"Vitamin B12", "Essential", "500-1000mcg daily", "Morning, with or without food", "Energy production, nervous system function, red blood cell formation", "Essential for vegans/vegetarians. Generally very safe."},
	{"Iron", "Essential", "18-45mg daily (if deficient)", "Empty stomach for best absorption, or with vitamin C", "Oxygen transport, energy, cognitive function", "Get levels tested first. Too much can be harmful."},
	{"Vitamin B Complex", "Essential", "1 daily as directed", "Morning with food", "Energy metabolism, nervous system, mood support", "May turn urine bright yellow. Normal and harmless."},
	{"Caffeine", "Performance", "100-400mg pre-workout", "30-60 minutes before training. Avoid after 2-4pm.", "Energy, focus, endurance, strength, fat oxidation", "Builds tolerance. Can disrupt sleep. Max 400mg/day."},
	{"Beta-Alanine", "Performance", "3-5g daily", "Split doses to avoid tingling, or take with pre-workout", "Endurance, reduces fatigue in 60-240 second efforts", "Causes harmless tingling (paresthesia)."},
	{"Citrulline Malate", "Performance", "6-8g pre-workout", "30-60 minutes before training", "Blood flow, pumps, endurance, reduces soreness", "Generally well tolerated."},
	{"L-Citrulline", "Performance", "3-6g pre-workout", "30-60 minutes before training", "Nitric oxide production, blood flow, pumps", "Generally well tolerated."},
	{"Beetroot Powder", "Performance", "500mg nitrates or 6g powder", "2-3 hours before endurance exercise", "Nitric oxide, endurance, blood pressure", "May turn urine/stool pink. Normal."},
	{"Taurine", "Performance", "1-3g daily", "Pre or post workout", "Hydration, endurance, antioxidant, heart health", "Very safe. High doses may cause GI upset."},
	{"Tyrosine", "Performance", "500-2000mg", "30-60 minutes before training or stressful situations", "Focus, alertness under stress, dopamine precursor", "Avoid if taking MAOIs. May interact with thyroid medication."},
	{"Alpha-GPC", "Performance", "300-600mg daily", "Morning or pre-workout", "Choline source, focus, memory, power output", "May cause headaches. Start low."},
	{"Whey Protein Isolate", "Recovery", "20-40g per serving", "Post-workout or as needed to hit protein goals", "Fast-absorbing protein, muscle protein synthesis, convenient", "Lactose-free option for those intolerant."},
	{"Whey Protein Concentrate", "Recovery", "20-40g per serving", "Post-workout or between meals", "Cost-effective protein, good amino acid profile", "May contain lactose. Check if sensitive."},
	{"Casein Protein", "Recovery", "20-40g per serving", "Before bed or between meals", "Slow-release protein, overnight recovery, satiety", "Contains lactose. Slower digestion."},
	{"BCAAs", "Recovery", "5-10g peri-workout", "During or after training", "May help during fasted training, recovery", "Unnecessary if eating enough protein."},
	{"EAAs", "Recovery", "10-15g peri-workout", "During or after training", "Complete amino acid profile, recovery, muscle protein synthesis", "More effective than BCAAs alone."},
	{"Glutamine", "Recovery", "5-10g daily", "Post-workout or before bed", "Gut health, immune function, recovery", "May be unnecessary with adequate protein intake."},
	{"HMB", "Recovery", "3g daily", "Split into 1g doses with meals", "Anti-catabolic, useful during cutting or for beginners", "Most beneficial for new lifters or during caloric deficit."},
	{"Multivitamin", "Health", "1 daily as directed", "With food for better absorption", "Insurance for micronutrient gaps", "Do not mega-dose. More is not better."},
	{"Vitamin C", "Health", "500-1000mg daily", "With meals", "Immune function, antioxidant, collagen synthesis", "High doses may cause GI upset."},
	{"Ashwagandha (KSM-66)", "Health", "300-600mg daily", "Morning or before bed", "Stress reduction, cortisol management, may boost testosterone", "May cause drowsiness. Avoid with thyroid medication."},
	{"Ashwagandha (Sensoril)", "Health", "125-250mg daily", "Morning or evening", "Stress reduction, sleep quality, adaptogenic", "More sedating than KSM-66. Avoid with thyroid issues."},
	{"Probiotics", "Health", "10-50 billion CFU daily", "With or without food (strain dependent)", "Gut health, immune function, digestion", "May cause initial bloating."},
	{"Collagen Peptides", "Health", "10-20g daily", "Any time, with vitamin C for absorption", "Skin, hair, nails, joint support, gut lining", "Generally very safe."},
	{"Melatonin", "Health", "0.5-3mg", "30-60 minutes before bed", "Sleep onset, jet lag, circadian rhythm", "Start low. Not for long-term daily use."},
	{"Glycine", "Health", "3-5g before bed", "30-60 minutes before sleep", "Sleep quality, collagen synthesis, cognitive function", "Very safe. May enhance sleep."},
	{"NAC (N-Acetyl Cysteine)", "Health", "600-1200mg daily", "Empty stomach or with meals", "Antioxidant, liver support, respiratory health, glutathione precursor", "May interact with some medications."},
	{"Coenzyme Q10", "Health", "100-300mg daily", "With fat-containing meal", "Energy production, heart health, antioxidant", "Essential if on statins."},
	{"Glucosamine", "Joint", "1500mg daily", "With meals, split doses", "Joint health, cartilage support", "Shellfish-derived versions exist. Takes weeks to work."},
	{"Chondroitin", "Joint", "800-1200mg daily", "With meals, often combined with glucosamine", "Joint cushioning, cartilage support", "May take 2-4 months for full effect."},
	{"MSM", "Joint", "1-3g daily", "With meals", "Joint health, inflammation, recovery", "May cause GI upset at high doses."},
	{"Turmeric/Curcumin", "Joint", "500-1000mg curcumin with piperine", "With food containing fat", "Anti-inflammatory, joint health, antioxidant", "Needs piperine for absorption. May thin blood."},
	{"Boswellia", "Joint", "300-500mg daily", "With meals", "Joint inflammation, mobility", "Generally well tolerated."},
	{"Type II Collagen", "Joint", "40mg daily (UC-II)", "On empty stomach", "Joint health, cartilage support, immune modulation", "Different from collagen peptides. Low dose is key."},
	{"L-Theanine", "Cognitive", "100-200mg", "With caffeine for synergy, or before bed for relaxation", "Calm focus, reduces caffeine jitters, relaxation", "Very safe. May cause drowsiness."},
	{"Lions Mane", "Cognitive", "500-1000mg daily", "Morning with food", "Nerve growth factor, cognitive function, mood", "May cause GI upset. Avoid with bleeding disorders."},
	{"Rhodiola Rosea", "Cognitive", "200-600mg daily", "Morning, empty stomach", "Adaptogen, fatigue reduction, stress resilience", "May cause insomnia if taken late. Stimulating."},
	{"Bacopa Monnieri", "Cognitive", "300-450mg daily", "With fat-containing meal", "Memory, learning, anxiety reduction", "Takes 8-12 weeks for full effect. May cause GI issues."},
	{"Ginkgo Biloba", "Cognitive", "120-240mg daily", "With meals, split doses", "Blood flow to brain, memory, cognitive function", "May thin blood. Avoid before surgery."},
	{"Phosphatidylserine", "Cognitive", "100-300mg daily", "With meals", "Cognitive function, cortisol reduction, memory", "May interact with blood thinners."},
	{"Tongkat Ali (Longjack)", "Hormones", "200-400mg daily", "Morning with food", "May support testosterone, libido, stress reduction", "Cycle usage. May cause insomnia."},
	{"Fenugreek", "Hormones", "500-600mg daily", "With meals", "May support testosterone, libido, blood sugar", "May cause maple syrup smell in sweat/urine."},
	{"DHEA", "Hormones", "25-50mg daily", "Morning with food", "Hormone precursor, may support testosterone and mood", "Get levels tested. May have hormonal side effects."},
	{"Boron", "Hormones", "3-10mg daily", "With food", "May support testosterone, bone health", "Do not exceed 20mg/day."},
	{"Magnesium L-Threonate", "Sleep", "1-2g daily (144mg elemental)", "Before bed", "Brain magnesium levels, sleep quality, cognitive function", "More expensive than other forms."},
	{"L-Tryptophan", "Sleep", "500-1000mg", "30-60 minutes before bed, empty stomach", "Serotonin precursor, sleep onset, mood", "May interact with SSRIs. Avoid with certain medications."},
	{"5-HTP", "Sleep", "50-200mg", "Before bed or with meals", "Serotonin production, sleep, mood", "Do not combine with SSRIs or MAOIs."},
	{"GABA", "Sleep", "250-750mg", "Before bed", "Relaxation, sleep support, anxiety reduction", "Poor blood-brain barrier penetration in some people."},
	{"Valerian Root", "Sleep", "300-600mg", "30-60 minutes before bed", "Sleep quality, relaxation, anxiety reduction", "May cause morning grogginess."},
	{"Apigenin", "Sleep", "50mg", "30-60 minutes before bed", "Relaxation, sleep onset, anxiety reduction", "Found in chamomile. Generally safe."},
}

type exerciseSeed struct {
	name        string
	sets        string
	reps        string
	rir         string
	rest        string
	notes       string
	progression string
}

type programDaySeed struct {
	name      string
	exercises []exerciseSeed
}

type programSeed struct {
	name        string
	description string
	goal        string
	days        []programDaySeed
}

var seedPrograms = []programSeed{
	{
		name:        "Lean Bulk - 3 Day PPL",
		description: "Push/Pull/Legs split optimized for muscle growth while staying relatively lean. Focus on progressive overload with moderate volume. Ideal for intermediate lifters with 1+ years of training experience.",
		goal:        "bulk",
		days: []programDaySeed{
			{"Push (Chest + Triceps)", []exerciseSeed{
				{"Incline Dumbbell Press", "3", "6-10", "2", "180", "Focus on stretch at bottom", "When you hit 3x10, increase weight"},
				{"Flat Barbell Bench Press", "3", "6-10", "2", "180", "Full ROM, touch chest", "Double progression 6-10"},
				{"Cable Flyes", "3", "10-15", "1", "90", "Squeeze at peak contraction", "Double progression 10-15"},
				{"Overhead Tricep Extension", "3", "10-15", "1", "90", "Deep stretch at bottom", "Double progression"},
				{"Tricep Pushdowns", "2", "12-15", "0", "60", "Pump set, full lockout", "Feel the burn"},
			}},
			{"Pull (Back + Biceps)", []exerciseSeed{
				{"Weighted Pull-ups", "3", "6-10", "2", "180", "Full hang to chin over bar", "Add weight when hitting 3x10"},
				{"Barbell Rows", "3", "6-10", "2", "180", "Controlled eccentric, pull to belly button", "Double progression"},
				{"Cable Rows", "3", "10-12", "1", "120", "Pause at contraction", "Double progression"},
				{"Face Pulls", "3", "15-20", "1", "60", "External rotation at top", "Light weight, high reps"},
				{"Barbell Curls", "3", "8-12", "1", "90", "No swinging", "Double progression"},
				{"Hammer Curls", "2", "10-15", "0", "60", "Brachialis focus", "Pump set"},
			}},
			{"Legs + Shoulders", []exerciseSeed{
				{"Barbell Squats", "3", "6-10", "2", "180", "Below parallel", "Double progression"},
				{"Romanian Deadlifts", "3", "8-12", "2", "150", "Feel hamstring stretch", "Double progression"},
				{"Leg Press", "3", "10-15", "1", "120", "Full ROM", "Double progression"},
				{"Leg Curls", "3", "10-15", "1", "90", "Slow eccentric", "Double progression"},
				{"Seated Dumbbell Press", "3", "8-12", "2", "120", "Controlled", "Double progression"},
				{"Lateral Raises", "3", "12-15", "1", "60", "Slight forward lean", "Light weight, feel it"},
				{"Calf Raises", "4", "12-15", "1", "60", "Full stretch at bottom", "Pause at top"},
			}},
		},
	},
	{
		name:        "Fat Loss - High Volume",
		description: "Higher rep ranges and shorter rest periods to maximize calorie burn while preserving muscle during a cut. Upper/Lower split with more training frequency.",
		goal:        "cut",
		days: []programDaySeed{
			{"Upper Body A", []exerciseSeed{
				{"Incline Dumbbell Press", "4", "10-12", "1", "90", "Controlled tempo", "Maintain weight during cut"},
				{"Cable Rows", "4", "10-12", "1", "90", "Squeeze at contraction", "Maintain strength"},
				{"Dumbbell Shoulder Press", "3", "10-12", "1", "90", "Full ROM", "Maintain"},
				{"Lat Pulldowns", "3", "12-15", "1", "60", "Wide grip", "Maintain"},
				{"Tricep Dips", "3", "AMRAP", "0", "60", "Bodyweight", "Add reps"},
				{"Bicep Curls", "3", "12-15", "0", "60", "Pump", "Maintain"},
			}},
			{"Lower Body", []exerciseSeed{
				{"Goblet Squats", "4", "12-15", "1", "90", "Deep", "Maintain"},
				{"Romanian Deadlifts", "4", "10-12", "1", "90", "Hamstring stretch", "Maintain"},
				{"Walking Lunges", "3", "12 each", "1", "60", "Long strides", "Maintain"},
				{"Leg Curls", "3", "12-15", "1", "60", "Controlled", "Maintain"},
				{"Calf Raises", "4", "15-20", "1", "45", "Full ROM", "Maintain"},
			}},
			{"Upper Body B", []exerciseSeed{
				{"Flat Bench Press", "4", "10-12", "1", "90", "Touch chest", "Maintain"},
				{"Barbell Rows", "4", "10-12", "1", "90", "Controlled", "Maintain"},
				{"Lateral Raises", "3", "15-20", "1", "45", "Light weight", "Maintain"},
				{"Face Pulls", "3", "15-20", "1", "45", "External rotation", "Maintain"},
				{"Overhead Tricep Extension", "3", "12-15", "1", "60", "Deep stretch", "Maintain"},
				{"Hammer Curls", "3", "12-15", "1", "60", "Controlled", "Maintain"},
			}},
		},
	},
	{
		name:        "Strength Focus - 5x5",
		description: "Classic strength program focusing on compound lifts with lower reps and heavier weights. Linear progression - add weight each session. Best for beginners to intermediates.",
		goal:        "strength",
		days: []programDaySeed{
			{"Day A (Squat/Bench/Row)", []exerciseSeed{
				{"Barbell Squats", "5", "5", "1-2", "180-300", "Add 2.5kg each session", "Linear progression"},
				{"Bench Press", "5", "5", "1-2", "180-300", "Add 2.5kg each session", "Linear progression"},
				{"Barbell Rows", "5", "5", "1-2", "180", "Add 2.5kg each session", "Linear progression"},
			}},
			{"Day B (Squat/OHP/Deadlift)", []exerciseSeed{
				{"Barbell Squats", "5", "5", "1-2", "180-300", "Same weight as Day A", "Linear progression"},
				{"Overhead Press", "5", "5", "1-2", "180-300", "Add 2.5kg each session", "Linear progression"},
				{"Deadlift", "1", "5", "1", "300", "One heavy set, add 5kg each session", "Linear progression"},
			}},
		},
	},
	{
		name:        "Beginner Full Body 3x/Week",
		description: "Perfect for beginners. Full body workouts 3 times per week with focus on learning movements and building base strength. Simple, effective, and sustainable.",
		goal:        "general",
		days: []programDaySeed{
			{"Full Body A", []exerciseSeed{
				{"Goblet Squats", "3", "10-12", "2", "120", "Focus on form, deep squat", "Add weight when form is solid"},
				{"Dumbbell Bench Press", "3", "10-12", "2", "120", "Control the weight", "Double progression"},
				{"Dumbbell Rows", "3", "10-12", "2", "120", "One arm at a time", "Double progression"},
				{"Dumbbell Shoulder Press", "2", "10-12", "2", "90", "Seated or standing", "Double progression"},
				{"Plank", "3", "30-60s", "-", "60", "Core tight, neutral spine", "Add time"},
			}},
			{"Full Body B", []exerciseSeed{
				{"Romanian Deadlifts", "3", "10-12", "2", "120", "Feel the hamstrings", "Double progression"},
				{"Lat Pulldowns", "3", "10-12", "2", "120", "Wide grip", "Double progression"},
				{"Incline Dumbbell Press", "3", "10-12", "2", "120", "30-45 degree incline", "Double progression"},
				{"Lateral Raises", "2", "12-15", "2", "60", "Light weight", "Double progression"},
				{"Leg Curls", "2", "12-15", "2", "90", "Controlled", "Double progression"},
			}},
			{"Full Body C", []exerciseSeed{
				{"Leg Press", "3", "10-12", "2", "120", "Full ROM", "Double progression"},
				{"Cable Rows", "3", "10-12", "2", "120", "Squeeze at contraction", "Double progression"},
				{"Dumbbell Flyes", "3", "12-15", "2", "90", "Feel the stretch", "Double progression"},
				{"Face Pulls", "3", "15-20", "2", "60", "Light weight, external rotation", "Double progression"},
				{"Calf Raises", "3", "15-20", "2", "60", "Full stretch at bottom", "Double progression"},
			}},
		},
	},
	{
		name:        "Body Recomposition",
		description: "For those at maintenance calories looking to build muscle and lose fat simultaneously. Upper/Lower split with moderate intensity and emphasis on progressive overload.",
		goal:        "recomp",
		days: []programDaySeed{
			{"Upper Body", []exerciseSeed{
				{"Bench Press", "4", "6-8", "2", "150", "Strength focus", "Double progression"},
				{"Barbell Rows", "4", "6-8", "2", "150", "Pull to belly button", "Double progression"},
				{"Incline Dumbbell Press", "3", "8-10", "2", "120", "30 degree incline", "Double progression"},
				{"Lat Pulldowns", "3", "8-10", "2", "120", "Wide grip", "Double progression"},
				{"Lateral Raises", "3", "12-15", "1", "60", "Light weight", "Double progression"},
				{"Tricep Pushdowns", "2", "12-15", "1", "60", "Full lockout", "Double progression"},
				{"Bicep Curls", "2", "12-15", "1", "60", "No swinging", "Double progression"},
			}},
			{"Lower Body", []exerciseSeed{
				{"Squats", "4", "6-8", "2", "180", "Below parallel", "Double progression"},
				{"Romanian Deadlifts", "4", "8-10", "2", "150", "Hamstring stretch", "Double progression"},
				{"Leg Press", "3", "10-12", "1", "120", "Full ROM", "Double progression"},
				{"Leg Curls", "3", "10-12", "1", "90", "Slow eccentric", "Double progression"},
				{"Calf Raises", "4", "12-15", "1", "60", "Full stretch", "Double progression"},
			}},
		},
	},
	{
		name:        "Push Pull Legs 6-Day",
		description: "Advanced 6-day split hitting each muscle group twice per week. High frequency and volume for maximum hypertrophy. Requires good recovery capacity.",
		goal:        "bulk",
		days: []programDaySeed{
			{"Push A (Strength)", []exerciseSeed{
				{"Bench Press", "4", "4-6", "2", "180", "Heavy day", "Double progression"},
				{"Overhead Press", "3", "6-8", "2", "150", "Standing", "Double progression"},
				{"Incline Dumbbell Press", "3", "8-10", "2", "120", "30 degree incline", "Double progression"},
				{"Lateral Raises", "4", "12-15", "1", "60", "Light weight", "Double progression"},
				{"Tricep Pushdowns", "3", "10-12", "1", "60", "Full lockout", "Double progression"},
				{"Overhead Tricep Extension", "2", "12-15", "0", "60", "Deep stretch", "Pump"},
			}},
			{"Pull A (Strength)", []exerciseSeed{
				{"Deadlift", "3", "4-6", "2", "240", "Heavy day", "Double progression"},
				{"Weighted Pull-ups", "4", "6-8", "2", "150", "Add weight when able", "Double progression"},
				{"Barbell Rows", "3", "6-8", "2", "150", "Strict form", "Double progression"},
				{"Face Pulls", "3", "15-20", "1", "60", "External rotation", "Double progression"},
				{"Barbell Curls", "3", "8-10", "1", "90", "Controlled", "Double progression"},
				{"Hammer Curls", "2", "10-12", "0", "60", "Brachialis", "Pump"},
			}},
			{"Legs A (Strength)", []exerciseSeed{
				{"Barbell Squats", "4", "4-6", "2", "240", "Heavy day", "Double progression"},
				{"Romanian Deadlifts", "3", "6-8", "2", "150", "Hamstring focus", "Double progression"},
				{"Leg Press", "3", "8-10", "2", "120", "Heavy", "Double progression"},
				{"Leg Curls", "3", "10-12", "1", "90", "Slow eccentric", "Double progression"},
				{"Calf Raises (Standing)", "4", "10-12", "1", "60", "Heavy", "Double progression"},
			}},
			{"Push B (Hypertrophy)", []exerciseSeed{
				{"Incline Dumbbell Press", "4", "8-12", "1", "120", "Stretch focus", "Double progression"},
				{"Cable Flyes", "3", "12-15", "1", "90", "Peak contraction", "Double progression"},
				{"Dumbbell Shoulder Press", "3", "10-12", "1", "120", "Seated", "Double progression"},
				{"Lateral Raises", "4", "15-20", "0", "45", "Drop set last set", "Pump"},
				{"Overhead Tricep Extension", "3", "12-15", "1", "60", "Deep stretch", "Double progression"},
				{"Tricep Kickbacks", "2", "15-20", "0", "45", "Pump", "Pump"},
			}},
			{"Pull B (Hypertrophy)", []exerciseSeed{
				{"Lat Pulldowns", "4", "10-12", "1", "120", "Wide grip", "Double progression"},
				{"Cable Rows", "4", "10-12", "1", "120", "Pause at contraction", "Double progression"},
				{"Dumbbell Rows", "3", "10-12", "1", "90", "One arm", "Double progression"},
				{"Reverse Flyes", "3", "15-20", "1", "60", "Rear delts", "Double progression"},
				{"Incline Dumbbell Curls", "3", "10-12", "1", "90", "Long head stretch", "Double progression"},
				{"Preacher Curls", "2", "12-15", "0", "60", "Short head", "Pump"},
			}},
			{"Legs B (Hypertrophy)", []exerciseSeed{
				{"Hack Squats", "4", "10-12", "1", "120", "Quad focus", "Double progression"},
				{"Stiff-Leg Deadlifts", "3", "10-12", "1", "120", "Straight legs", "Double progression"},
				{"Leg Extensions", "3", "12-15", "1", "90", "Peak contraction", "Double progression"},
				{"Leg Curls", "3", "12-15", "1", "90", "Slow eccentric", "Double progression"},
				{"Walking Lunges", "3", "12 each", "1", "90", "Long strides", "Double progression"},
				{"Calf Raises (Seated)", "4", "15-20", "0", "45", "Soleus focus", "Pump"},
			}},
		},
	},
}
